package genai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	googlegenai "google.golang.org/genai"

	"creativegen/internal/domain"
	"creativegen/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Part is one element of a model response: inline binary data or text.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// IsInlineData reports whether the part carries binary payload.
func (p Part) IsInlineData() bool {
	return len(p.Data) > 0
}

// Response holds the ordered parts of the first candidate.
type Response struct {
	Model string
	Parts []Part
}

// contentAPI is the slice of the SDK the client depends on; *genai.Models
// satisfies it.
type contentAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*googlegenai.Content, config *googlegenai.GenerateContentConfig) (*googlegenai.GenerateContentResponse, error)
}

// Client issues single generateContent calls against one model.
type Client struct {
	api    contentAPI
	model  string
	logger *infra.Logger
}

// NewClient constructs a Gemini client. A missing API key fails immediately so
// the process stops before any work is attempted.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, domain.ErrMissingCredential
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = infra.DefaultModel
	}

	cfg := &googlegenai.ClientConfig{
		APIKey:     apiKey,
		Backend:    googlegenai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		cfg.HTTPOptions.BaseURL = strings.TrimRight(base, "/") + "/"
	}

	sdk, err := googlegenai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai: create client: %w", err)
	}

	return newClient(sdk.Models, model, opts.Logger), nil
}

func newClient(api contentAPI, model string, logger *infra.Logger) *Client {
	if logger == nil {
		logger = infra.NopLogger()
	}
	return &Client{api: api, model: model, logger: logger}
}

// Model returns the configured Gemini model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends prompt as a single user turn and returns the parts of
// the first candidate.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (*Response, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.New("genai: prompt is empty")
	}

	start := time.Now()
	resp, err := c.api.GenerateContent(ctx, c.model, googlegenai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("genai: generate content with %s: %w", c.model, err)
	}

	out := &Response{Model: c.model, Parts: firstCandidateParts(resp)}
	c.logger.Debug().
		Str("model", c.model).
		Int("prompt_chars", len(prompt)).
		Int("parts", len(out.Parts)).
		Dur("duration", time.Since(start)).
		Msg("genai: content generated")

	return out, nil
}

func firstCandidateParts(resp *googlegenai.GenerateContentResponse) []Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return nil
	}

	parts := make([]Part, 0, len(cand.Content.Parts))
	for _, p := range cand.Content.Parts {
		if p == nil {
			continue
		}
		switch {
		case p.InlineData != nil && len(p.InlineData.Data) > 0:
			parts = append(parts, Part{Data: p.InlineData.Data, MIMEType: p.InlineData.MIMEType})
		case p.Text != "":
			parts = append(parts, Part{Text: p.Text})
		}
	}
	return parts
}
