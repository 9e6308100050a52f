package service

import (
	"context"
	"fmt"
	"strings"

	apperr "vidchat/internal/errors"
)

// Conversion kinds accepted by TextService.Convert.
const (
	KindTopics    = "topics"
	KindSummarize = "summarize"
)

var prompts = map[string]string{
	KindTopics: "Please extract the main topics or themes present in the given text. " +
		"Do not provide explanations or context, just list the topics or themes. Here is the text: \"%s\"",
	KindSummarize: "Extract main topics from the text and provide summaries with each topic as a title, " +
		"capturing the relevant summary: \"%s\"",
}

// Completer answers a single prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TextService turns transcript text into topics or summaries.
type TextService interface {
	Convert(ctx context.Context, text, kind string) (string, error)
}

type textService struct {
	completer Completer
}

// NewTextService builds a TextService.
func NewTextService(completer Completer) TextService {
	return &textService{completer: completer}
}

func (s *textService) Convert(ctx context.Context, text, kind string) (string, error) {
	prompt, ok := prompts[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return "", apperr.ErrInvalidType
	}
	if strings.TrimSpace(text) == "" {
		return "", apperr.ErrMissingFields
	}
	return s.completer.Complete(ctx, fmt.Sprintf(prompt, text))
}
