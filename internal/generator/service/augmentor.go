package service

import (
	"context"

	"github.com/dennysfredericci/gosu-prompt-generator/internal/generator/domain"
)

// Augmentor retrieves supporting content for a question. Implementations live
// under internal/augmentor; tests substitute their own.
type Augmentor interface {
	Augment(ctx context.Context, req domain.AugmentationRequest) (*domain.AugmentationResult, error)
}

// AugmentorFunc adapts a plain function to the Augmentor interface.
type AugmentorFunc func(ctx context.Context, req domain.AugmentationRequest) (*domain.AugmentationResult, error)

func (f AugmentorFunc) Augment(ctx context.Context, req domain.AugmentationRequest) (*domain.AugmentationResult, error) {
	return f(ctx, req)
}
