package bootstrap

import (
	"fmt"

	"github.com/dennysfredericci/gosu-prompt-generator/config"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/augmentor"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/augmentor/remote"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/augmentor/snippets"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/generator/service"
)

// NewAugmentor builds the retrieval augmentor selected by cfg.
func NewAugmentor(cfg config.AugmentorConfig) (service.Augmentor, error) {
	switch cfg.Backend {
	case augmentor.BackendRemote:
		return remote.NewClient(cfg.URL, cfg.Timeout), nil
	case augmentor.BackendSnippets:
		store, err := snippets.Load(cfg.SnippetsDir, cfg.MaxResults)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown augmentor backend %q", cfg.Backend)
	}
}
