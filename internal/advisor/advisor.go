// Package advisor implements the per-capability advice pipelines: market
// analysis, weather/irrigation guidance, government scheme matching, profit
// prediction, and crop disease diagnosis. Each pipeline sequences query
// refinement, a grounded fetch, and an enhancement expansion, degrading to
// capability-specific fallbacks when a stage yields nothing usable.
package advisor

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/agrisense/agri-advisor/internal/expand"
	"github.com/agrisense/agri-advisor/internal/extract"
	"github.com/agrisense/agri-advisor/pkg/gemini"
)

// Provider identifiers recorded in result sources, primary always first.
const (
	sourcePerplexity  = "perplexity"
	sourceGemini      = "gemini"
	sourceFallback    = "fallback_calculation"
	sourceWeatherScan = "Perplexity Weather Analysis"
)

// Grounded is the retrying search-grounded fetch surface.
type Grounded interface {
	Fetch(ctx context.Context, prompt string, required ...string) (extract.Document, error)
	FetchText(ctx context.Context, prompt string) (string, error)
}

// Enhancer is the single-shot expansion surface.
type Enhancer interface {
	Expand(ctx context.Context, spec expand.Spec, prompt string) extract.Document
}

// Models names the general-purpose provider models per role.
type Models struct {
	// Pro handles query refinement.
	Pro string
	// Flash handles expansions.
	Flash string
	// Vision handles image diagnosis.
	Vision string
}

// Advisor owns the provider surfaces shared by all capabilities. All state
// is request-scoped; an Advisor is safe for concurrent use.
type Advisor struct {
	grounded Grounded
	enhancer Enhancer
	llm      gemini.Client
	models   Models
}

// New creates an Advisor.
func New(grounded Grounded, enhancer Enhancer, llm gemini.Client, models Models) *Advisor {
	return &Advisor{
		grounded: grounded,
		enhancer: enhancer,
		llm:      llm,
		models:   models,
	}
}

// refineQuery turns raw user input into a focused search query using the
// heavier reasoning model. An empty completion is an error.
func (a *Advisor) refineQuery(ctx context.Context, prompt string) (string, error) {
	text, err := a.llm.GenerateText(ctx, a.models.Pro, prompt)
	if err != nil {
		return "", err
	}
	refined := strings.TrimSpace(text)
	if refined == "" {
		return "", errors.New("empty refinement response")
	}
	zap.L().Debug("refined search query", zap.String("query", refined))
	return refined, nil
}
