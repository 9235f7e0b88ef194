package api

// AnalyzeTextRequest represents the request payload for text analysis
type AnalyzeTextRequest struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

// AudioRequest represents the request payload for both audio endpoints.
// Audio is base64 encoded; Tone is ignored by /transcribe-audio.
type AudioRequest struct {
	Audio    string `json:"audio"`
	MIMEType string `json:"mimeType"`
	Tone     string `json:"tone"`
}

// TranscriptionResponse represents the response payload for /transcribe-audio
type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
}

// HealthResponse represents the response payload for /health
type HealthResponse struct {
	Status          string `json:"status"`
	GeminiAvailable bool   `json:"gemini_available"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error       string `json:"error"`
	RawResponse string `json:"raw_response,omitempty"`
}
