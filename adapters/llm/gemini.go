package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/satriahrh/solace/server/domain/entities"
	"github.com/satriahrh/solace/server/domain/repositories"
)

const (
	defaultModel          = "gemini-2.0-flash"
	defaultTimeoutSeconds = 60
)

var errEmptyReply = errors.New("no response text received from Gemini")

// GeminiConfig holds configuration for the Gemini adapter
// Required fields:
// - APIKey: Gemini API key
// Optional fields with defaults:
// - Model: model name (default: "gemini-2.0-flash")
// - TimeoutSeconds: deadline for a single model call (default: 60)
// - Temperature: sampling temperature between 0 and 2, zero leaves the model default
type GeminiConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
	Temperature    float32
}

// ValidateGeminiConfig validates the GeminiConfig
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	if config.Temperature < 0 || config.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %f", config.Temperature)
	}

	if config.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must be positive, got %d", config.TimeoutSeconds)
	}

	return nil
}

// contentGenerator is the slice of *genai.Models the client needs
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements JournalModel on top of the Gemini API
type GeminiClient struct {
	models      contentGenerator
	logger      *zap.Logger
	model       string
	timeout     time.Duration
	temperature float32
}

// Ensure GeminiClient implements the JournalModel interface
var _ repositories.JournalModel = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini client from config
func NewGeminiClient(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiClient, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newGeminiClient(client.Models, config, logger), nil
}

func newGeminiClient(models contentGenerator, config GeminiConfig, logger *zap.Logger) *GeminiClient {
	model := config.Model
	if model == "" {
		model = defaultModel
		logger.Info("Using default model", zap.String("model", model))
	}

	timeoutSeconds := config.TimeoutSeconds
	if timeoutSeconds == 0 {
		timeoutSeconds = defaultTimeoutSeconds
		logger.Info("Using default timeoutSeconds", zap.Int("timeoutSeconds", timeoutSeconds))
	}

	return &GeminiClient{
		models:      models,
		logger:      logger,
		model:       model,
		timeout:     time.Duration(timeoutSeconds) * time.Second,
		temperature: config.Temperature,
	}
}

// TranscribeAudio sends the audio inline with a verbatim transcription instruction
func (g *GeminiClient) TranscribeAudio(ctx context.Context, audio entities.AudioPayload) (string, error) {
	mimeType := audio.MIMEType
	if mimeType == "" {
		mimeType = entities.DefaultAudioMIMEType
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcriptionPrompt),
			genai.NewPartFromBytes(audio.Data, mimeType),
		}, genai.RoleUser),
	}

	text, err := g.generate(ctx, contents)
	if err != nil {
		g.logger.Error("Failed to transcribe audio",
			zap.String("mime_type", mimeType),
			zap.Int("audio_bytes", len(audio.Data)),
			zap.Error(err))
		return "", &entities.TranscriptionError{Err: err}
	}

	transcription := strings.TrimSpace(text)
	if transcription == "" {
		g.logger.Warn("Empty transcription", zap.String("mime_type", mimeType))
		return "", &entities.TranscriptionError{Err: errEmptyReply}
	}

	g.logger.Info("Audio transcribed",
		zap.String("mime_type", mimeType),
		zap.Int("audio_bytes", len(audio.Data)),
		zap.Int("transcription_length", len(transcription)))

	return transcription, nil
}

// AnalyzeText sends the persona and task prompts as two user turns and parses the reply
func (g *GeminiClient) AnalyzeText(ctx context.Context, text string, tone entities.Tone) (*entities.AnalysisResult, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(buildPersonaPrompt(tone), genai.RoleUser),
		genai.NewContentFromText(buildAnalysisPrompt(text), genai.RoleUser),
	}

	reply, err := g.generate(ctx, contents)
	if err != nil {
		if errors.Is(err, errEmptyReply) {
			return nil, &entities.AnalysisError{Message: noResponseMessage, Err: err}
		}
		g.logger.Error("Failed to analyze text", zap.String("tone", string(tone)), zap.Error(err))
		return nil, &entities.AnalysisError{Message: err.Error(), Err: err}
	}

	result, err := ParseAnalysis(reply)
	if err != nil {
		g.logger.Warn("Unparsable analysis reply",
			zap.String("response_preview", reply[:min(80, len(reply))]),
			zap.Error(err))
		return nil, err
	}

	g.logger.Info("Text analyzed",
		zap.String("tone", string(tone)),
		zap.String("mood", string(result.Mood)),
		zap.Int("highlights", len(result.Highlights)))

	return result, nil
}

// generate runs one GenerateContent call and concatenates the text parts of the first candidate
func (g *GeminiClient) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	config := &genai.GenerateContentConfig{}
	if g.temperature != 0 {
		config.Temperature = genai.Ptr(g.temperature)
	}

	response, err := g.models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", err
	}

	if response == nil || len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", errEmptyReply
	}

	var b strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}

	if b.Len() == 0 {
		return "", errEmptyReply
	}
	return b.String(), nil
}
