package repositories

import (
	"context"

	"github.com/satriahrh/solace/server/domain/entities"
)

// JournalModel abstracts the generative model behind the journaling endpoints
type JournalModel interface {
	// TranscribeAudio returns the verbatim text of the audio, or a *entities.TranscriptionError
	TranscribeAudio(ctx context.Context, audio entities.AudioPayload) (string, error)
	// AnalyzeText summarizes the entry and classifies its mood, or returns a *entities.AnalysisError
	AnalyzeText(ctx context.Context, text string, tone entities.Tone) (*entities.AnalysisResult, error)
}
