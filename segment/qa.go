package segment

import "strings"

const (
	questionMarker = "**질문:**"
	answerMarker   = "**답변:**"
)

type qaPair struct {
	question string
	answer   string
}

// splitQAPairs extracts explicit question/answer pairs from section content.
//
// Content is cut at every question marker. Within each cut, the text up to
// the answer marker is the question and the rest is the answer. Text before
// the first question marker is returned as prose. A cut without an answer
// marker is not a valid pair and is folded back into the prose so no text
// is lost.
func splitQAPairs(content string) (prose string, pairs []qaPair) {
	parts := strings.Split(content, questionMarker)

	proseParts := []string{strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		question, answer, found := strings.Cut(part, answerMarker)
		if !found {
			proseParts = append(proseParts, strings.TrimSpace(part))
			continue
		}
		question = strings.TrimSpace(question)
		answer = strings.TrimSpace(answer)
		if question == "" || answer == "" {
			proseParts = append(proseParts, strings.TrimSpace(part))
			continue
		}
		pairs = append(pairs, qaPair{question: question, answer: answer})
	}

	var kept []string
	for _, p := range proseParts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n"), pairs
}
