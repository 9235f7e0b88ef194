package llm

import (
	"fmt"

	"github.com/satriahrh/solace/server/domain/entities"
)

const transcriptionPrompt = "Please transcribe the attached audio file accurately. Only return the transcribed text, nothing else."

// buildPersonaPrompt returns the Solace persona instruction for the given tone
func buildPersonaPrompt(tone entities.Tone) string {
	return "You are an emotionally intelligent AI journaling assistant called Solace. " +
		"Your job is to analyze user-submitted content and provide emotional support. " +
		tone.Instruction() + "\n\n" +
		"Based on the content, assess the user's mood as one of: happy, neutral, or sad.\n\n" +
		"If the user's mood appears sad, respond compassionately and offer comforting, encouraging words to uplift their mood. " +
		"If the user is happy or neutral, be friendly and engaging, and maintain or elevate their emotional state.\n\n" +
		"Always aim to make the user feel heard, understood, and better than before. Use a warm, conversational tone and never judge the content. " +
		"Keep responses concise but meaningful, emotionally aware, and human-like in tone. Do not ask probing or invasive questions."
}

// buildAnalysisPrompt asks for the JSON shape ParseAnalysis understands
func buildAnalysisPrompt(userInput string) string {
	return fmt.Sprintf(`Analyze the following user input and return the result in the following JSON format:
{
  "summary": "A concise 2-3 sentence summary of the submission, capturing key points.",
  "mood": "Based on the text classify the user's mood as either: happy, neutral, or sad",
  "response": "Your empathetic response to help improve or maintain the user's emotional state",
  "highlights": [
    "Key moment or insight 1",
    "Key moment or insight 2"
  ]
}

User input:
%s`, userInput)
}
