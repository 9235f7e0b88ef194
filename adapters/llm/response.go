package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/satriahrh/solace/server/domain/entities"
)

const noResponseMessage = "No response text received from Gemini."

// analysisReply mirrors the JSON shape requested by buildAnalysisPrompt
type analysisReply struct {
	Summary    string   `json:"summary"`
	Mood       string   `json:"mood"`
	Response   string   `json:"response"`
	Highlights []string `json:"highlights"`
}

// ParseAnalysis recovers an AnalysisResult from a free-text model reply.
// Markdown fences, a leading "json" tag, prose before the first '{' and
// chatter after the object are tolerated. On failure the returned
// *entities.AnalysisError carries the reply exactly as received.
func ParseAnalysis(raw string) (*entities.AnalysisResult, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, &entities.AnalysisError{Message: noResponseMessage}
	}

	text = stripCodeFence(text)
	if start := strings.IndexByte(text, '{'); start != -1 {
		text = text[start:]
	}

	var reply analysisReply
	if err := json.NewDecoder(strings.NewReader(text)).Decode(&reply); err != nil {
		return nil, parseFailure(raw, err)
	}

	mood, err := entities.ParseMood(reply.Mood)
	if err != nil {
		return nil, parseFailure(raw, err)
	}

	highlights := reply.Highlights
	if highlights == nil {
		highlights = []string{}
	}

	return &entities.AnalysisResult{
		Summary:    reply.Summary,
		Mood:       mood,
		Response:   reply.Response,
		Highlights: highlights,
	}, nil
}

// stripCodeFence removes ``` fences and the language tag that usually follows them
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") {
		return text
	}

	text = strings.TrimSpace(strings.Trim(text, "`"))
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = strings.TrimSpace(text[4:])
	}
	return text
}

func parseFailure(raw string, err error) *entities.AnalysisError {
	return &entities.AnalysisError{
		Message:     fmt.Sprintf("JSON parsing failed: %s", err.Error()),
		RawResponse: raw,
		Err:         err,
	}
}
