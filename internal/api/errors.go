package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/solace/server/domain/entities"
	"github.com/satriahrh/solace/server/usecase"
)

// NewHTTPErrorHandler renders every handler error as an ErrorResponse.
// Validation errors are 400 and echo errors keep their own code. Anything
// else, including upstream model failures, is 500.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classifyError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err))
		} else {
			logger.Info("Request rejected",
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.String("reason", body.Error))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
	}
}

func classifyError(err error) (int, ErrorResponse) {
	var (
		validationErr    *usecase.ValidationError
		transcriptionErr *entities.TranscriptionError
		analysisErr      *entities.AnalysisError
		httpErr          *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, ErrorResponse{Error: validationErr.Message}
	case errors.Is(err, usecase.ErrServiceUnavailable):
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error()}
	case errors.As(err, &transcriptionErr):
		return http.StatusInternalServerError, ErrorResponse{Error: transcriptionErr.Error()}
	case errors.As(err, &analysisErr):
		return http.StatusInternalServerError, ErrorResponse{
			Error:       analysisErr.Message,
			RawResponse: analysisErr.RawResponse,
		}
	case errors.As(err, &httpErr):
		return httpErr.Code, ErrorResponse{Error: fmt.Sprint(httpErr.Message)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error()}
	}
}
