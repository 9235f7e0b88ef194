package llm

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/satriahrh/solace/server/domain/entities"
)

const plainReply = `{
  "summary": "Went for a run and met an old friend.",
  "mood": "happy",
  "response": "That sounds like a lovely day!",
  "highlights": ["Morning run", "Meeting Sam"]
}`

func TestParseAnalysis_Plain(t *testing.T) {
	result, err := ParseAnalysis(plainReply)
	if err != nil {
		t.Fatalf("ParseAnalysis returned error: %v", err)
	}

	if result.Mood != entities.MoodHappy {
		t.Errorf("Expected mood happy, got %s", result.Mood)
	}
	if result.Summary != "Went for a run and met an old friend." {
		t.Errorf("Unexpected summary: %s", result.Summary)
	}
	if !reflect.DeepEqual(result.Highlights, []string{"Morning run", "Meeting Sam"}) {
		t.Errorf("Unexpected highlights: %v", result.Highlights)
	}
}

func TestParseAnalysis_FencedMatchesPlain(t *testing.T) {
	want, err := ParseAnalysis(plainReply)
	if err != nil {
		t.Fatalf("ParseAnalysis(plain) returned error: %v", err)
	}

	tests := []struct {
		name  string
		reply string
	}{
		{"json tag", "```json\n" + plainReply + "\n```"},
		{"upper case tag", "```JSON\n" + plainReply + "\n```"},
		{"no tag", "```\n" + plainReply + "\n```"},
		{"surrounding whitespace", "\n\n  ```json\n" + plainReply + "\n```  \n"},
		{"leading prose", "Sure! Here is the analysis you asked for:\n" + plainReply},
		{"prose then fence", "Here you go:\n```json\n" + plainReply + "\n```"},
		{"trailing chatter", plainReply + "\nLet me know if you need anything else."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnalysis(tt.reply)
			if err != nil {
				t.Fatalf("ParseAnalysis returned error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Expected %+v, got %+v", want, got)
			}
		})
	}
}

func TestParseAnalysis_Unparsable(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"no json", "I'm sorry, I can't help with that."},
		{"truncated", `{"summary": "cut off`},
		{"wrong types", `{"summary": "x", "mood": "sad", "response": "y", "highlights": "not a list"}`},
		{"unknown mood", `{"summary": "x", "mood": "furious", "response": "y", "highlights": []}`},
		{"fence with garbage", "```json\nnot really json\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseAnalysis(tt.reply)
			if result != nil {
				t.Errorf("Expected nil result, got %+v", result)
			}

			var analysisErr *entities.AnalysisError
			if !errors.As(err, &analysisErr) {
				t.Fatalf("Expected *entities.AnalysisError, got %T", err)
			}
			if !strings.HasPrefix(analysisErr.Message, "JSON parsing failed: ") {
				t.Errorf("Unexpected message: %s", analysisErr.Message)
			}
			if analysisErr.RawResponse != tt.reply {
				t.Errorf("Expected raw response %q, got %q", tt.reply, analysisErr.RawResponse)
			}
		})
	}
}

func TestParseAnalysis_Empty(t *testing.T) {
	_, err := ParseAnalysis("   \n")

	var analysisErr *entities.AnalysisError
	if !errors.As(err, &analysisErr) {
		t.Fatalf("Expected *entities.AnalysisError, got %T", err)
	}
	if analysisErr.Message != noResponseMessage {
		t.Errorf("Unexpected message: %s", analysisErr.Message)
	}
	if analysisErr.RawResponse != "" {
		t.Errorf("Expected no raw response, got %q", analysisErr.RawResponse)
	}
}

func TestParseAnalysis_MissingHighlights(t *testing.T) {
	result, err := ParseAnalysis(`{"summary": "s", "mood": "Neutral", "response": "r"}`)
	if err != nil {
		t.Fatalf("ParseAnalysis returned error: %v", err)
	}
	if result.Highlights == nil || len(result.Highlights) != 0 {
		t.Errorf("Expected empty highlights, got %#v", result.Highlights)
	}
	if result.Mood != entities.MoodNeutral {
		t.Errorf("Expected mood neutral, got %s", result.Mood)
	}
}
