package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dennysfredericci/gosu-prompt-generator/internal/generator/domain"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/generator/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(aug service.Augmentor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(service.NewPromptService(aug)).Register(r)
	return r
}

func staticAugmentor(texts ...string) service.AugmentorFunc {
	return func(_ context.Context, _ domain.AugmentationRequest) (*domain.AugmentationResult, error) {
		res := &domain.AugmentationResult{}
		for _, t := range texts {
			res.Contents = append(res.Contents, domain.Content{Text: t})
		}
		return res, nil
	}
}

func TestGenerate_OK(t *testing.T) {
	router := newRouter(staticAugmentor("Use var x : String"))

	req := httptest.NewRequest(http.MethodGet, "/generate?prompt="+url.QueryEscape("How do I declare a variable?"), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "# Question Section\n\nHow do I declare a variable?")
	assert.Contains(t, rr.Body.String(), "# Content Support Section\n\nUse var x : String")
}

func TestGenerate_MissingPrompt(t *testing.T) {
	var got string
	router := newRouter(service.AugmentorFunc(func(_ context.Context, req domain.AugmentationRequest) (*domain.AugmentationResult, error) {
		got = req.UserMessage.Text
		return &domain.AugmentationResult{}, nil
	}))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/generate", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "", got)
	assert.Contains(t, rr.Body.String(), "# Question Section\n\n\n\n")
}

func TestGenerate_AugmentorFailure(t *testing.T) {
	router := newRouter(service.AugmentorFunc(func(context.Context, domain.AugmentationRequest) (*domain.AugmentationResult, error) {
		return nil, errors.New("vector store down")
	}))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/generate?prompt=q", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "vector store down")
	assert.NotContains(t, rr.Body.String(), "# Question Section")
}

func TestGenerate_MethodNotAllowed(t *testing.T) {
	router := newRouter(staticAugmentor())
	router.HandleMethodNotAllowed = true

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/generate?prompt=q", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
