// Package ollama talks to an optional local Ollama server. Every call is best
// effort: failures are logged and counted, never returned to callers.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/joestump/rental-agent/internal/config"
	"github.com/joestump/rental-agent/internal/metrics"
)

const (
	DefaultURL             = "http://localhost:11434"
	DefaultModel           = "tinyllama:latest"
	DefaultProbeTimeout    = 5 * time.Second
	DefaultGenerateTimeout = 15 * time.Second
)

// Client is a minimal Ollama HTTP client.
type Client struct {
	baseURL         string
	model           string
	promptCustom    string
	probeTimeout    time.Duration
	generateTimeout time.Duration
	client          *http.Client
}

// New creates a client from config, filling unset values with defaults.
func New(cfg *config.Config) *Client {
	return NewClient(cfg.Ollama.URL, cfg.Ollama.Model,
		WithTimeouts(cfg.Ollama.ProbeTimeout, cfg.Ollama.GenerateTimeout),
		WithPrompt(cfg.Ollama.Prompt))
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeouts overrides the probe and generate timeouts. Zero keeps the default.
func WithTimeouts(probe, generate time.Duration) ClientOption {
	return func(c *Client) {
		if probe > 0 {
			c.probeTimeout = probe
		}
		if generate > 0 {
			c.generateTimeout = generate
		}
	}
}

// WithPrompt replaces the embedded prompt template.
func WithPrompt(tmpl string) ClientOption {
	return func(c *Client) { c.promptCustom = tmpl }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a client for baseURL and model.
func NewClient(baseURL, model string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		model:           model,
		probeTimeout:    DefaultProbeTimeout,
		generateTimeout: DefaultGenerateTimeout,
		client:          &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server address.
func (c *Client) BaseURL() string { return c.baseURL }

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Reachable reports whether GET /api/tags answers 200 within the probe timeout.
func (c *Client) Reachable(ctx context.Context) bool {
	_, err := c.tags(ctx)
	return err == nil
}

// ListModels returns the installed model names, or nil on any failure.
func (c *Client) ListModels(ctx context.Context) []string {
	tags, err := c.tags(ctx)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names
}

func (c *Client) tags(ctx context.Context) (*tagsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	body, err := c.do(ctx, "tags", http.MethodGet, "/api/tags", nil)
	if err != nil {
		return nil, err
	}
	var tags tagsResponse
	if err := json.Unmarshal(body, &tags); err != nil {
		c.fail("tags", fmt.Errorf("decode response: %w", err))
		return nil, err
	}
	return &tags, nil
}

// Generate asks the model for a completion and returns the trimmed text, or
// "" on any failure.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: 0.7,
			TopP:        0.9,
			MaxTokens:   150,
			NumPredict:  100,
		},
	})
	if err != nil {
		c.fail("generate", fmt.Errorf("marshal request: %w", err))
		return ""
	}

	body, err := c.do(ctx, "generate", http.MethodPost, "/api/generate", payload)
	if err != nil {
		return ""
	}
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.fail("generate", fmt.Errorf("decode response: %w", err))
		return ""
	}
	return strings.TrimSpace(resp.Response)
}

// do performs one request and returns the body of a 200 response. Failures
// are logged and counted before being returned.
func (c *Client) do(ctx context.Context, endpoint, method, path string, payload []byte) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.ProbeDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		c.fail(endpoint, fmt.Errorf("create request: %w", err))
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.fail(endpoint, fmt.Errorf("ollama request: %w", err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.fail(endpoint, fmt.Errorf("read response: %w", err))
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("ollama returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
		c.fail(endpoint, err)
		return nil, err
	}

	metrics.ProbeRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return body, nil
}

func (c *Client) fail(endpoint string, err error) {
	metrics.ProbeRequestsTotal.WithLabelValues(endpoint, "error").Inc()
	slog.Warn("ollama request failed", "endpoint", endpoint, "url", c.baseURL, "error", err)
}
