package http

import (
	"context"
	"net/http"

	"github.com/dennysfredericci/gosu-prompt-generator/internal/logging"
	"github.com/gin-gonic/gin"
)

// PromptGenerator renders a prompt for a question.
type PromptGenerator interface {
	Generate(ctx context.Context, question string) (string, error)
}

type Handler struct {
	generator PromptGenerator
}

func New(generator PromptGenerator) *Handler {
	return &Handler{generator: generator}
}

// Generate handles GET /generate?prompt=<text>. A missing prompt is treated
// as the empty question.
func (h *Handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	question := c.Query("prompt")

	prompt, err := h.generator.Generate(ctx, question)
	if err != nil {
		logging.NewLogger(ctx).LogError("http_generate", err)
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	c.String(http.StatusOK, prompt)
}
