package segment

import "regexp"

// maxKeywords caps the keyword set per chunk.
const maxKeywords = 20

// keywordSampleRunes bounds how much chunk content feeds keyword extraction.
// The hierarchy path and question text always participate in full.
const keywordSampleRunes = 200

var keywordPattern = regexp.MustCompile(`[가-힣a-zA-Z0-9]+`)

// ExtractKeywords tokenizes text into runs of Hangul syllables, Latin
// letters and digits, keeps runs of two or more runes, and deduplicates
// preserving first-occurrence order. Order preservation keeps the chunk set
// byte-identical across rebuilds of the same document.
func ExtractKeywords(text string) []string {
	seen := make(map[string]struct{})
	var keywords []string

	for _, token := range keywordPattern.FindAllString(text, -1) {
		if len([]rune(token)) < 2 {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// keywordSample truncates content for keyword extraction input.
func keywordSample(content string) string {
	runes := []rune(content)
	if len(runes) <= keywordSampleRunes {
		return content
	}
	return string(runes[:keywordSampleRunes])
}
