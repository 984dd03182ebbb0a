package snippets

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/dennysfredericci/gosu-prompt-generator/internal/augmentor"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/generator/domain"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/logging"
)

const (
	DefaultMaxResults = 3

	// Query tokens shorter than this ("a", "I", "do") are ignored.
	minTokenLen = 3
)

// Store answers augmentation requests from .md and .txt files on disk. It is
// meant for local development when no retrieval service is running.
type Store struct {
	docs       []Doc
	maxResults int
}

// Load reads every snippet under dir. Files are visited in lexical order.
func Load(dir string, maxResults int) (*Store, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	s := &Store{maxResults: maxResults}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".md" && ext != ".txt" {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		s.docs = append(s.docs, Doc{
			ID:      path,
			Title:   title,
			Content: string(b),
			words:   words(title + "\n" + string(b)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load snippets from %s: %w", dir, err)
	}
	return s, nil
}

func (s *Store) Len() int {
	return len(s.docs)
}

// Augment returns the snippets sharing the most tokens with the user message.
// Ties keep load order.
func (s *Store) Augment(ctx context.Context, req domain.AugmentationRequest) (*domain.AugmentationResult, error) {
	start := time.Now()
	res := &domain.AugmentationResult{Contents: []domain.Content{}}

	for _, hit := range s.search(req.UserMessage.Text) {
		res.Contents = append(res.Contents, domain.Content{
			Text: hit.doc.Content,
			Metadata: map[string]any{
				"id":    hit.doc.ID,
				"title": hit.doc.Title,
				"score": float64(hit.hits),
			},
		})
	}

	augmentor.RecordCall(augmentor.BackendSnippets, time.Since(start), nil)
	logging.NewLogger(ctx).LogInfof("snippets_augment", "correlation_id=%s matches=%d", req.CorrelationID, len(res.Contents))
	return res, nil
}

type scored struct {
	doc  Doc
	hits int
}

func (s *Store) search(q string) []scored {
	var tokens []string
	for _, tok := range words(q) {
		if len(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return nil
	}

	out := make([]scored, 0, len(s.docs))
	for _, d := range s.docs {
		hits := 0
		for _, tok := range tokens {
			if d.hasWordPrefix(tok) {
				hits++
			}
		}
		if hits > 0 {
			out = append(out, scored{doc: d, hits: hits})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].hits > out[j].hits })
	if len(out) > s.maxResults {
		out = out[:s.maxResults]
	}
	return out
}

// hasWordPrefix reports whether some word of d starts with tok, so
// "variable" matches "variables" but "a" never matches inside "declare".
func (d Doc) hasWordPrefix(tok string) bool {
	for _, w := range d.words {
		if strings.HasPrefix(w, tok) {
			return true
		}
	}
	return false
}

func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
