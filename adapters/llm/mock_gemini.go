package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/satriahrh/solace/server/domain/entities"
	"github.com/satriahrh/solace/server/domain/repositories"
)

var (
	happyWords = []string{"happy", "joy", "excited", "great", "wonderful", "love", "awesome", "good", "smile"}
	sadWords   = []string{"sad", "upset", "depressed", "unhappy", "terrible", "bad", "worried", "anxious", "stress"}

	sentenceSplit = regexp.MustCompile(`[.!?]+`)
)

const mockSummaryWords = 15

// MockGeminiClient is an offline JournalModel. It answers with a keyword based
// mood reading unless TranscribeFunc or AnalyzeFunc override it.
type MockGeminiClient struct {
	TranscribeFunc func(ctx context.Context, audio entities.AudioPayload) (string, error)
	AnalyzeFunc    func(ctx context.Context, text string, tone entities.Tone) (*entities.AnalysisResult, error)

	mu              sync.Mutex
	transcribeCalls int
	analyzeCalls    int
	lastTone        entities.Tone
}

// NewMockGeminiClient creates a new mock Gemini client
func NewMockGeminiClient() *MockGeminiClient {
	return &MockGeminiClient{}
}

var _ repositories.JournalModel = (*MockGeminiClient)(nil)

// TranscribeAudio implements repositories.JournalModel
func (m *MockGeminiClient) TranscribeAudio(ctx context.Context, audio entities.AudioPayload) (string, error) {
	m.mu.Lock()
	m.transcribeCalls++
	m.mu.Unlock()

	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, audio)
	}
	return fmt.Sprintf("Today I recorded %d bytes of %s audio and it was a good day.", len(audio.Data), audio.MIMEType), nil
}

// AnalyzeText implements repositories.JournalModel
func (m *MockGeminiClient) AnalyzeText(ctx context.Context, text string, tone entities.Tone) (*entities.AnalysisResult, error) {
	m.mu.Lock()
	m.analyzeCalls++
	m.lastTone = tone
	m.mu.Unlock()

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, text, tone)
	}
	return keywordAnalysis(text), nil
}

// TranscribeCalls returns how many times TranscribeAudio ran
func (m *MockGeminiClient) TranscribeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transcribeCalls
}

// AnalyzeCalls returns how many times AnalyzeText ran
func (m *MockGeminiClient) AnalyzeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.analyzeCalls
}

// LastTone returns the tone of the most recent AnalyzeText call
func (m *MockGeminiClient) LastTone() entities.Tone {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTone
}

func keywordAnalysis(text string) *entities.AnalysisResult {
	lower := strings.ToLower(text)

	var happyScore, sadScore int
	for _, word := range happyWords {
		if strings.Contains(lower, word) {
			happyScore++
		}
	}
	for _, word := range sadWords {
		if strings.Contains(lower, word) {
			sadScore++
		}
	}

	result := &entities.AnalysisResult{}
	switch {
	case happyScore > sadScore:
		result.Mood = entities.MoodHappy
		result.Response = "I'm glad to see you're in good spirits! Remember to savor these feelings and the little joys that brought them about."
	case sadScore > happyScore:
		result.Mood = entities.MoodSad
		result.Response = "I notice you might be feeling down. That's completely okay, all emotions are valid and temporary. Be gentle with yourself today."
	default:
		result.Mood = entities.MoodNeutral
		result.Response = "Thanks for sharing your thoughts. Taking time to reflect like this is a healthy practice."
	}

	words := strings.Fields(text)
	if len(words) > mockSummaryWords {
		result.Summary = strings.Join(words[:mockSummaryWords], " ") + "..."
	} else {
		result.Summary = strings.TrimSpace(text)
	}

	var sentences []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) > 2 {
		sentences = []string{sentences[0], sentences[len(sentences)-1]}
	}
	if sentences == nil {
		sentences = []string{}
	}
	result.Highlights = sentences

	return result
}
