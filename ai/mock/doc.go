// Package mock provides test double implementations of the AI service
// interfaces.
//
// The mocks allow tests to run without external AI services and with
// controlled, deterministic behavior:
//
//   - MockEmbedder: returns reproducible unit vectors derived from the text
//   - MockAnswerer: tokenizes questions, picks sections by path overlap, and
//     returns canned answers carrying the contact footer
//   - MockProvider: aggregates the two
//
// Custom behavior is injected through function fields:
//
//	answerer := mock.NewMockAnswerer()
//	answerer.GenerateAnswerFunc = func(ctx context.Context, req ai.AnswerRequest) (string, error) {
//	    return "고정 응답", nil
//	}
package mock
