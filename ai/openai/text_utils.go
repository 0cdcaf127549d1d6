package openai

import "strings"

// stripCodeFences removes markdown code fences some models wrap around
// JSON output even in JSON mode.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// truncateDocument cuts a document to at most max runes, appending an
// elision marker when anything was dropped. Rune-based so a multi-byte
// Hangul syllable is never split.
func truncateDocument(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "\n\n...(이하 생략)"
}

// isLetter returns true if the rune is an ASCII letter.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
