package entities

import (
	"fmt"
	"strings"
)

// Mood is the three-way classification assigned to a journal entry
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// ParseMood normalizes a model supplied mood and rejects anything outside the enum
func ParseMood(s string) (Mood, error) {
	switch m := Mood(strings.ToLower(strings.TrimSpace(s))); m {
	case MoodHappy, MoodNeutral, MoodSad:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mood %q", s)
	}
}

// Tone selects the emotional register of the assistant persona
type Tone string

const (
	ToneCalm       Tone = "calm"
	ToneCheerful   Tone = "cheerful"
	ToneThoughtful Tone = "thoughtful"
)

// DefaultTone is used whenever the caller sends nothing or something unknown
const DefaultTone = ToneCalm

var toneInstructions = map[Tone]string{
	ToneCalm:       "Use a soothing, gentle tone that brings peace and comfort.",
	ToneCheerful:   "Use an upbeat, positive tone that spreads joy and optimism.",
	ToneThoughtful: "Use a reflective, insightful tone that encourages deep thinking.",
}

// ParseTone maps a client value to a Tone, falling back to calm
func ParseTone(s string) Tone {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := toneInstructions[t]; ok {
		return t
	}
	return DefaultTone
}

// Instruction returns the persona instruction for the tone
func (t Tone) Instruction() string {
	if instruction, ok := toneInstructions[t]; ok {
		return instruction
	}
	return toneInstructions[DefaultTone]
}

// DefaultAudioMIMEType is assumed when the client omits mimeType
const DefaultAudioMIMEType = "audio/mpeg"

// AudioPayload is decoded audio plus its MIME type. The bytes are not inspected.
type AudioPayload struct {
	Data     []byte
	MIMEType string
}

// AnalysisResult is the structured reading of a journal entry
type AnalysisResult struct {
	Summary       string   `json:"summary"`
	Mood          Mood     `json:"mood"`
	Response      string   `json:"response"`
	Highlights    []string `json:"highlights"`
	Transcription string   `json:"transcription,omitempty"`
}
