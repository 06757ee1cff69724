package llm

import "strings"

// ExtractJSON strips a surrounding markdown code fence, which some models add
// even in JSON mode.
func ExtractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
		// Drop the language tag line ("json", "JSON", ...).
		if tag := strings.TrimSpace(trimmed[:newline]); !strings.ContainsAny(tag, "{[") {
			trimmed = trimmed[newline+1:]
		}
	}
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
