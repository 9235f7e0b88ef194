package llm

import (
	"context"
	"testing"

	"github.com/satriahrh/solace/server/domain/entities"
)

func TestMockGeminiClient_KeywordMood(t *testing.T) {
	tests := []struct {
		text string
		want entities.Mood
	}{
		{"What a wonderful day, I love the sunshine!", entities.MoodHappy},
		{"I feel sad and worried about tomorrow.", entities.MoodSad},
		{"I went to the store and bought bread.", entities.MoodNeutral},
	}

	client := NewMockGeminiClient()
	for _, tt := range tests {
		result, err := client.AnalyzeText(context.Background(), tt.text, entities.ToneCalm)
		if err != nil {
			t.Fatalf("AnalyzeText returned error: %v", err)
		}
		if result.Mood != tt.want {
			t.Errorf("AnalyzeText(%q) mood = %s, want %s", tt.text, result.Mood, tt.want)
		}
	}

	if client.AnalyzeCalls() != len(tests) {
		t.Errorf("Expected %d analyze calls, got %d", len(tests), client.AnalyzeCalls())
	}
}

func TestMockGeminiClient_SummaryAndHighlights(t *testing.T) {
	text := "First I woke up early. Then I made coffee and read a book for an hour or two before work. Finally I slept."

	result := keywordAnalysis(text)

	if result.Summary != "First I woke up early. Then I made coffee and read a book for an..." {
		t.Errorf("Unexpected summary: %q", result.Summary)
	}
	if len(result.Highlights) != 2 {
		t.Fatalf("Expected 2 highlights, got %v", result.Highlights)
	}
	if result.Highlights[0] != "First I woke up early" || result.Highlights[1] != "Finally I slept" {
		t.Errorf("Unexpected highlights: %v", result.Highlights)
	}
}

func TestMockGeminiClient_Overrides(t *testing.T) {
	client := NewMockGeminiClient()
	client.TranscribeFunc = func(ctx context.Context, audio entities.AudioPayload) (string, error) {
		return "override", nil
	}

	text, err := client.TranscribeAudio(context.Background(), entities.AudioPayload{})
	if err != nil || text != "override" {
		t.Errorf("Expected override transcription, got %q, %v", text, err)
	}
	if client.TranscribeCalls() != 1 {
		t.Errorf("Expected 1 transcribe call, got %d", client.TranscribeCalls())
	}
}
