package entities

// TranscriptionErrorPrefix starts every transcription failure message
const TranscriptionErrorPrefix = "Error during transcription: "

// TranscriptionError reports a failed audio transcription
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return TranscriptionErrorPrefix + e.Err.Error()
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// AnalysisError reports a failed analysis. RawResponse holds the untouched
// model reply when the failure happened while parsing it.
type AnalysisError struct {
	Message     string
	RawResponse string
	Err         error
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
