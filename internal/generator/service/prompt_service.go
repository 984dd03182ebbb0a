package service

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/dennysfredericci/gosu-prompt-generator/internal/generator/domain"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/logging"
	"github.com/google/uuid"
)

const (
	QuestionPlaceholder = "QUESTION"
	ContentPlaceholder  = "CONTENT_SUPPORT"
	ContentSeparator    = "\n\n ---- \n\n"
)

//go:embed prompt.template
var promptTemplate string

// PromptTemplate returns the raw template with both placeholders intact.
func PromptTemplate() string {
	return promptTemplate
}

// PromptService renders the Gosu expert prompt for a question.
type PromptService struct {
	augmentor Augmentor
	newID     func() string
}

func NewPromptService(augmentor Augmentor) *PromptService {
	return &PromptService{
		augmentor: augmentor,
		newID:     uuid.NewString,
	}
}

// Generate asks the augmentor for supporting content and substitutes the
// question and the joined content into the template. Placeholders are
// replaced everywhere they appear, question first. Augmentor errors are
// returned to the caller unlogged.
func (s *PromptService) Generate(ctx context.Context, question string) (string, error) {
	support, err := s.contentSupport(ctx, question)
	if err != nil {
		return "", err
	}

	out := strings.ReplaceAll(promptTemplate, QuestionPlaceholder, question)
	out = strings.ReplaceAll(out, ContentPlaceholder, support)
	return out, nil
}

func (s *PromptService) contentSupport(ctx context.Context, question string) (string, error) {
	req := domain.AugmentationRequest{
		UserMessage:   domain.UserMessage(question),
		CorrelationID: s.newID(),
		History:       []domain.ChatMessage{},
	}

	logging.NewLogger(ctx).LogInfof("augment", "correlation_id=%s", req.CorrelationID)

	res, err := s.augmentor.Augment(ctx, req)
	if err != nil {
		return "", fmt.Errorf("augment: %w", err)
	}
	return strings.Join(res.Texts(), ContentSeparator), nil
}
