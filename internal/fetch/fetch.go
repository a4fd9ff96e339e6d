// Package fetch wraps the search-grounded provider with bounded retries,
// JSON extraction, and required-field validation.
package fetch

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/agrisense/agri-advisor/internal/extract"
	"github.com/agrisense/agri-advisor/internal/resilience"
	"github.com/agrisense/agri-advisor/pkg/perplexity"
)

const (
	defaultMaxTokens   = 2048
	defaultTemperature = 0.1
)

// UnavailableError reports transport-level retry exhaustion: the provider
// could not be reached at all. Callers surface this as service-unavailable.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("fetch: provider unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// NoDataError reports content-level retry exhaustion: the provider answered
// but never produced a usable document. Callers fall back.
type NoDataError struct {
	Err error
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("fetch: no usable data from provider: %v", e.Err)
}

func (e *NoDataError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err is a transport-level exhaustion.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

// IsNoData reports whether err is a content-level exhaustion.
func IsNoData(err error) bool {
	var ne *NoDataError
	return errors.As(err, &ne)
}

// Fetcher issues grounded completions with retry. Every failure cause is
// retried uniformly: a malformed completion is retried exactly like a
// network timeout, on the assumption the provider self-corrects. The retry
// predicate lives in cfg.ShouldRetry for callers who want to separate the
// two.
type Fetcher struct {
	client      perplexity.Client
	cfg         resilience.RetryConfig
	maxTokens   int
	temperature float64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRetryConfig overrides the default retry policy.
func WithRetryConfig(cfg resilience.RetryConfig) Option {
	return func(f *Fetcher) {
		f.cfg = cfg
	}
}

// WithMaxTokens overrides the completion token budget.
func WithMaxTokens(n int) Option {
	return func(f *Fetcher) {
		f.maxTokens = n
	}
}

// New creates a Fetcher over the given grounded-completion client.
func New(client perplexity.Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      client,
		cfg:         resilience.DefaultRetryConfig(),
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// fetch stages, used to classify the final error after exhaustion.
const (
	stageCall = iota
	stageContent
)

// Fetch sends the prompt, extracts the embedded JSON object from the
// completion, and validates the required keys. On exhaustion it returns
// *UnavailableError when the last failure was the provider call itself, or
// *NoDataError when the provider answered with unusable content.
func (f *Fetcher) Fetch(ctx context.Context, prompt string, required ...string) (extract.Document, error) {
	lastStage := stageCall

	cfg := f.cfg
	if cfg.OnRetry == nil {
		cfg.OnRetry = resilience.RetryLogger("perplexity", "fetch")
	}

	doc, err := resilience.DoVal(ctx, cfg, func(ctx context.Context) (extract.Document, error) {
		resp, err := f.client.ChatCompletion(ctx, f.request(prompt))
		if err != nil {
			lastStage = stageCall
			return nil, err
		}

		lastStage = stageContent
		d, err := extract.FromText(resp.Content())
		if err != nil {
			return nil, err
		}
		if err := extract.Validate(d, required...); err != nil {
			return nil, err
		}
		return d, nil
	})
	if err != nil {
		return nil, f.classify(lastStage, err)
	}
	return doc, nil
}

// FetchText sends the prompt and returns the raw completion text, for
// capabilities whose provider answers in prose rather than JSON. An empty
// completion counts as a failed attempt.
func (f *Fetcher) FetchText(ctx context.Context, prompt string) (string, error) {
	lastStage := stageCall

	cfg := f.cfg
	if cfg.OnRetry == nil {
		cfg.OnRetry = resilience.RetryLogger("perplexity", "fetch_text")
	}

	text, err := resilience.DoVal(ctx, cfg, func(ctx context.Context) (string, error) {
		resp, err := f.client.ChatCompletion(ctx, f.request(prompt))
		if err != nil {
			lastStage = stageCall
			return "", err
		}
		lastStage = stageContent
		if resp.Content() == "" {
			return "", errors.New("empty completion")
		}
		return resp.Content(), nil
	})
	if err != nil {
		return "", f.classify(lastStage, err)
	}
	return text, nil
}

func (f *Fetcher) request(prompt string) perplexity.ChatCompletionRequest {
	temp := f.temperature
	maxTokens := f.maxTokens
	return perplexity.ChatCompletionRequest{
		Messages:    []perplexity.Message{{Role: "user", Content: prompt}},
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	}
}

func (f *Fetcher) classify(lastStage int, err error) error {
	if lastStage == stageCall {
		zap.L().Error("grounded fetch exhausted on transport failure", zap.Error(err))
		return &UnavailableError{Err: err}
	}
	zap.L().Warn("grounded fetch exhausted on unusable content", zap.Error(err))
	return &NoDataError{Err: err}
}
