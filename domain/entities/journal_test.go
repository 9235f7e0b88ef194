package entities

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTone(t *testing.T) {
	tests := []struct {
		input string
		want  Tone
	}{
		{"calm", ToneCalm},
		{"cheerful", ToneCheerful},
		{"thoughtful", ToneThoughtful},
		{"  Cheerful ", ToneCheerful},
		{"", ToneCalm},
		{"sarcastic", ToneCalm},
	}

	for _, tt := range tests {
		if got := ParseTone(tt.input); got != tt.want {
			t.Errorf("ParseTone(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestToneInstruction(t *testing.T) {
	if !strings.Contains(ToneCalm.Instruction(), "soothing") {
		t.Errorf("unexpected calm instruction: %s", ToneCalm.Instruction())
	}
	if !strings.Contains(ToneCheerful.Instruction(), "upbeat") {
		t.Errorf("unexpected cheerful instruction: %s", ToneCheerful.Instruction())
	}
	if !strings.Contains(ToneThoughtful.Instruction(), "reflective") {
		t.Errorf("unexpected thoughtful instruction: %s", ToneThoughtful.Instruction())
	}

	// An unvalidated tone still gets the calm instruction
	if Tone("angry").Instruction() != ToneCalm.Instruction() {
		t.Error("Expected unknown tone to fall back to calm instruction")
	}
}

func TestParseMood(t *testing.T) {
	for _, input := range []string{"happy", "neutral", "sad", " SAD "} {
		if _, err := ParseMood(input); err != nil {
			t.Errorf("ParseMood(%q) returned error: %v", input, err)
		}
	}

	for _, input := range []string{"", "angry", "happy-ish"} {
		if _, err := ParseMood(input); err == nil {
			t.Errorf("ParseMood(%q) should fail", input)
		}
	}
}

func TestTranscriptionError(t *testing.T) {
	cause := errors.New("network timeout")
	err := &TranscriptionError{Err: cause}

	if err.Error() != "Error during transcription: network timeout" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected TranscriptionError to unwrap to its cause")
	}
}
