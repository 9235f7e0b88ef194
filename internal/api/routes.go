package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/solace/server/usecase"
)

type handler struct {
	journal *usecase.JournalService
	logger  *zap.Logger
}

// InitRoutes initializes all API routes and the error handler they rely on
func InitRoutes(e *echo.Echo, journal *usecase.JournalService, logger *zap.Logger) {
	h := &handler{journal: journal, logger: logger}

	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.GET("/health", h.health)
	e.POST("/analyze-text", h.analyzeText)
	e.POST("/transcribe-audio", h.transcribeAudio)
	e.POST("/analyze-audio", h.analyzeAudio)
}

func (h *handler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:          "healthy",
		GeminiAvailable: h.journal.Available(),
	})
}

func (h *handler) analyzeText(c echo.Context) error {
	if !h.journal.Available() {
		return usecase.ErrServiceUnavailable
	}

	var req AnalyzeTextRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	result, err := h.journal.AnalyzeText(c.Request().Context(), req.Text, req.Tone)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *handler) transcribeAudio(c echo.Context) error {
	if !h.journal.Available() {
		return usecase.ErrServiceUnavailable
	}

	var req AudioRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	transcription, err := h.journal.TranscribeAudio(c.Request().Context(), usecase.AudioRequest{
		Audio:    req.Audio,
		MIMEType: req.MIMEType,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TranscriptionResponse{Transcription: transcription})
}

func (h *handler) analyzeAudio(c echo.Context) error {
	if !h.journal.Available() {
		return usecase.ErrServiceUnavailable
	}

	var req AudioRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	result, err := h.journal.AnalyzeAudio(c.Request().Context(), usecase.AudioRequest{
		Audio:    req.Audio,
		MIMEType: req.MIMEType,
		Tone:     req.Tone,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Audio entry analyzed",
		zap.String("mood", string(result.Mood)),
		zap.Int("transcription_length", len(result.Transcription)))

	return c.JSON(http.StatusOK, result)
}
