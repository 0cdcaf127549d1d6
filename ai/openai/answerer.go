// Copyright 2026 Mundap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// maxClassifySections caps how many candidate sections are offered to the
// section classifier in one request. Keeps the prompt inside the context
// window of small local models.
const maxClassifySections = 100

// maxDocumentRunes caps the grounding document handed to answer generation.
// Longer excerpts are cut with an elision marker.
const maxDocumentRunes = 20000

// Answerer implements ai.Answerer using OpenAI-compatible chat APIs.
type Answerer struct {
	client llms.Model
	logger *slog.Logger
}

// keywordResponse is the JSON shape requested from the keyword extractor.
type keywordResponse struct {
	Keywords []string `json:"keywords"`
}

// newAnswerer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newAnswerer(config *ai.Config) (*Answerer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &Answerer{
		client: client,
		logger: slog.Default().With("component", "openai-answerer"),
	}, nil
}

// NewAnswerer creates a new answerer using the provided configuration.
//
// Returns ai.Answerer interface to enforce abstraction.
func NewAnswerer(config *ai.Config) (ai.Answerer, error) {
	return newAnswerer(config)
}

// ExtractKeywords asks the chat model for the core keywords of a question.
// The model responds in JSON mode; malformed output is repaired and retried
// up to 3 times before giving up.
func (a *Answerer) ExtractKeywords(ctx context.Context, question string) ([]string, error) {
	content := []llms.MessageContent{
		systemMessage(keywordSystemPrompt),
		humanMessage("다음 질문에서 핵심 키워드를 추출하세요: " + question),
	}

	var result keywordResponse
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content,
			llms.WithTemperature(0.3),
			llms.WithJSONMode())
		if err != nil {
			a.logger.Error("keyword extraction request failed", "attempt", attempt+1, "err", err)
			return nil, err
		}

		text, err := choiceText(response)
		if err != nil {
			return nil, err
		}
		text = repairJSON(stripCodeFences(text))

		if err := json.Unmarshal([]byte(text), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing keyword response",
				"attempt", attempt+1,
				"response", text,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}
	if lastErr != nil {
		a.logger.Error("failed to parse keyword response after retries", "err", lastErr)
		return nil, lastErr
	}

	keywords := make([]string, 0, len(result.Keywords))
	for _, kw := range result.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	a.logger.Debug("extracted keywords", "question", question, "keywords", keywords)
	return keywords, nil
}

// ClassifySection asks the chat model to pick the most relevant section from
// a closed set. The response must be one of the offered ids; anything else,
// including the explicit NONE sentinel, maps to ai.ErrNoSection.
func (a *Answerer) ClassifySection(ctx context.Context, question string, sections []ai.SectionRef) (core.ID, error) {
	if len(sections) == 0 {
		return 0, ai.ErrNoSection
	}
	if len(sections) > maxClassifySections {
		sections = sections[:maxClassifySections]
	}

	content := []llms.MessageContent{
		systemMessage(classifySystemPrompt),
		humanMessage(classifyUserPrompt(question, sections)),
	}

	response, err := a.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.3),
		llms.WithMaxTokens(20))
	if err != nil {
		a.logger.Error("section classification request failed", "err", err)
		return 0, err
	}

	text, err := choiceText(response)
	if err != nil {
		return 0, err
	}
	text = strings.TrimSpace(text)

	if text == noSectionSentinel {
		a.logger.Debug("classifier declined to pick a section", "question", question)
		return 0, ai.ErrNoSection
	}

	id, err := core.ParseID(text)
	if err != nil {
		a.logger.Warn("classifier returned unparseable id", "response", text)
		return 0, ai.ErrNoSection
	}
	for _, s := range sections {
		if s.Id == id {
			return id, nil
		}
	}

	a.logger.Warn("classifier picked id outside the offered set", "id", id)
	return 0, ai.ErrNoSection
}

// GenerateAnswer writes a grounded answer styled for the question's intent.
// The grounding document is truncated to keep the request inside model
// context limits.
func (a *Answerer) GenerateAnswer(ctx context.Context, req ai.AnswerRequest) (string, error) {
	req.Document = truncateDocument(req.Document, maxDocumentRunes)

	content := []llms.MessageContent{
		systemMessage(answerSystemPrompt(req.Intent, req.Contact)),
		humanMessage(answerUserPrompt(req)),
	}

	response, err := a.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.1),
		llms.WithMaxTokens(1500))
	if err != nil {
		a.logger.Error("answer generation request failed", "err", err)
		return "", err
	}

	text, err := choiceText(response)
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(text)
	if answer == "" {
		return "", ai.ErrEmptyResponse
	}

	a.logger.Debug("generated answer",
		"intent", req.Intent.String(),
		"length", len(answer))
	return answer, nil
}

func systemMessage(text string) llms.MessageContent {
	return llms.MessageContent{
		Role:  llms.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(text)},
	}
}

func humanMessage(text string) llms.MessageContent {
	return llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(text)},
	}
}

func choiceText(response *llms.ContentResponse) (string, error) {
	if response == nil || len(response.Choices) == 0 {
		return "", ai.ErrEmptyResponse
	}
	return response.Choices[0].Content, nil
}
