package namecast

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the engine request for a batch of source texts.
//
// The prompt preserves the exact original ordering and strings of texts and
// instructs the engine to reply with a bare JSON object mapping each
// original phrase to its English translation, with no extra commentary.
func BuildPrompt(texts []string, context string, maxLength int) string {
	var b strings.Builder

	b.WriteString("# Task\n")
	b.WriteString("Translate the following Chinese phrases into short, descriptive English names.\n\n")

	b.WriteString("# Requirements\n")
	b.WriteString("- Keep each translation concise and descriptive.\n")
	if maxLength > 0 {
		fmt.Fprintf(&b, "- Keep each translation under %d characters.\n", maxLength)
	}
	b.WriteString("- Reply with a single JSON object whose keys are the original phrases and whose values are the English translations.\n")
	b.WriteString("- Output only the JSON object. No commentary, no Markdown code fences.\n")

	if context != "" {
		b.WriteString("\n# Context\n")
		b.WriteString("Use the following background to disambiguate domain terminology:\n")
		b.WriteString("---\n")
		b.WriteString(context)
		b.WriteString("\n---\n")
	}

	b.WriteString("\n# Phrases\n")
	for i, text := range texts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, text)
	}

	return b.String()
}
