package upstream

import (
	"fmt"
	"strings"
)

const systemInstruction = "You are an emotionally intelligent AI assistant. Provide empathetic, context-aware responses that match the emotional tone of the user's message."

const promptClosing = "Please provide an empathetic, emotionally intelligent response that matches the user's emotional state and addresses their message appropriately."

// buildPrompt embeds the user text and, when present, the context and the detected emotion.
func buildPrompt(req ResponseRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User message: \"%s\"\n", req.Text)
	if c := strings.TrimSpace(req.Context); c != "" {
		fmt.Fprintf(&b, "Context: %s\n", c)
	}
	if e := strings.TrimSpace(req.Emotion); e != "" {
		fmt.Fprintf(&b, "Detected emotion: %s\n", e)
	}
	b.WriteString("\n")
	b.WriteString(promptClosing)
	return b.String()
}
