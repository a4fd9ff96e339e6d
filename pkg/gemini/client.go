// Package gemini wraps the Google GenAI SDK behind a narrow interface for
// general-purpose completions, with and without an image payload.
package gemini

import (
	"context"

	"github.com/rotisserie/eris"
	"google.golang.org/genai"
)

// Client defines the Gemini operations used by the advice pipelines.
type Client interface {
	// GenerateText runs a text-only completion and returns the response text.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	// GenerateVision runs a completion over a prompt plus one inline image.
	GenerateVision(ctx context.Context, model, prompt string, image []byte, mimeType string) (string, error)
}

type sdkClient struct {
	client *genai.Client
}

// Option configures the underlying SDK client.
type Option func(*genai.ClientConfig)

// WithBaseURL overrides the API endpoint (tests).
func WithBaseURL(url string) Option {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = url
	}
}

// NewClient creates a Gemini client. The API key is required.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (Client, error) {
	if apiKey == "" {
		return nil, eris.New("gemini: API key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, o := range opts {
		o(cfg)
	}

	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, eris.Wrap(err, "gemini: create client")
	}
	return &sdkClient{client: c}, nil
}

func (c *sdkClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", eris.Wrapf(err, "gemini: generate content with %s", model)
	}
	return resp.Text(), nil
}

func (c *sdkClient) GenerateVision(ctx context.Context, model, prompt string, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", eris.Wrapf(err, "gemini: generate vision content with %s", model)
	}
	return resp.Text(), nil
}
