package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dennysfredericci/gosu-prompt-generator/internal/augmentor"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/generator/domain"
	"github.com/dennysfredericci/gosu-prompt-generator/internal/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultTimeout = 30 * time.Second

// ErrAugmentorUnavailable is returned when the upstream augmentor cannot be reached.
var ErrAugmentorUnavailable = errors.New("retrieval augmentor unavailable")

// Client calls an external retrieval augmentor over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new augmentor client. A zero timeout means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Augment posts the request to {baseURL}/augment and decodes the returned contents.
func (c *Client) Augment(ctx context.Context, req domain.AugmentationRequest) (*domain.AugmentationResult, error) {
	start := time.Now()
	res, err := c.augment(ctx, req)
	augmentor.RecordCall(augmentor.BackendRemote, time.Since(start), err)
	return res, err
}

func (c *Client) augment(ctx context.Context, req domain.AugmentationRequest) (*domain.AugmentationResult, error) {
	history := req.History
	if history == nil {
		history = []domain.ChatMessage{}
	}
	body, err := json.Marshal(augmentRequest{
		UserMessage:  req.UserMessage.Text,
		ChatMemoryID: req.CorrelationID,
		ChatMemory:   history,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/augment", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Correlation-Id", req.CorrelationID)
	if rid := logging.RequestID(ctx); rid != "" {
		httpReq.Header.Set("X-Request-Id", rid)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAugmentorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("augmentor returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out augmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return &domain.AugmentationResult{Contents: out.Contents}, nil
}
