package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/satriahrh/solace/server/domain/entities"
	"github.com/satriahrh/solace/server/domain/repositories"
)

// ErrServiceUnavailable is returned by every operation when no model is configured
var ErrServiceUnavailable = errors.New("Gemini service not available. Please check your API key.")

// ValidationError reports a problem with the caller's input
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AudioRequest is a base64 audio upload as received from the client
type AudioRequest struct {
	Audio    string
	MIMEType string
	Tone     string
}

// JournalService turns journal text or audio into an analysis
type JournalService struct {
	model  repositories.JournalModel
	logger *zap.Logger
}

// NewJournalService creates a journal service. A nil model leaves the service
// running but unavailable.
func NewJournalService(model repositories.JournalModel, logger *zap.Logger) *JournalService {
	return &JournalService{
		model:  model,
		logger: logger,
	}
}

// Available reports whether a model client is configured
func (s *JournalService) Available() bool {
	return s.model != nil
}

// AnalyzeText analyzes a written entry
func (s *JournalService) AnalyzeText(ctx context.Context, text, tone string) (*entities.AnalysisResult, error) {
	if !s.Available() {
		return nil, ErrServiceUnavailable
	}

	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Message: "Text content is required"}
	}

	return s.model.AnalyzeText(ctx, text, entities.ParseTone(tone))
}

// TranscribeAudio decodes and transcribes an audio upload
func (s *JournalService) TranscribeAudio(ctx context.Context, req AudioRequest) (string, error) {
	if !s.Available() {
		return "", ErrServiceUnavailable
	}

	audio, err := decodeAudio(req)
	if err != nil {
		return "", err
	}

	return s.model.TranscribeAudio(ctx, audio)
}

// AnalyzeAudio transcribes an audio upload and analyzes the transcription.
// Analysis is skipped entirely when transcription fails.
func (s *JournalService) AnalyzeAudio(ctx context.Context, req AudioRequest) (*entities.AnalysisResult, error) {
	if !s.Available() {
		return nil, ErrServiceUnavailable
	}

	audio, err := decodeAudio(req)
	if err != nil {
		return nil, err
	}

	transcription, err := s.model.TranscribeAudio(ctx, audio)
	if err != nil {
		s.logger.Warn("Transcription failed, skipping analysis",
			zap.String("mime_type", audio.MIMEType),
			zap.Error(err))
		return nil, err
	}

	result, err := s.model.AnalyzeText(ctx, transcription, entities.ParseTone(req.Tone))
	if err != nil {
		return nil, err
	}

	result.Transcription = transcription
	return result, nil
}

func decodeAudio(req AudioRequest) (entities.AudioPayload, error) {
	if req.Audio == "" {
		return entities.AudioPayload{}, &ValidationError{Message: "Audio data is required"}
	}

	data, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		return entities.AudioPayload{}, &ValidationError{
			Message: fmt.Sprintf("Audio data is not valid base64: %s", err.Error()),
			Err:     err,
		}
	}

	mimeType := strings.TrimSpace(req.MIMEType)
	if mimeType == "" {
		mimeType = entities.DefaultAudioMIMEType
	}

	return entities.AudioPayload{Data: data, MIMEType: mimeType}, nil
}
