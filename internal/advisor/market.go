package advisor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agrisense/agri-advisor/internal/expand"
	"github.com/agrisense/agri-advisor/internal/extract"
)

// marketRequired is the field set the grounded trend document must carry.
var marketRequired = []string{"current_price_range", "trend_direction"}

// AnalyzeMarket fetches current price trends for a crop/region and expands
// them into a buy/hold/sell recommendation. The trend fetch is the critical
// path: its failure is returned to the caller. Expansion failure degrades
// to a trend-only result.
func (a *Advisor) AnalyzeMarket(ctx context.Context, cropName, region string) (*MarketAnalysis, error) {
	result := &MarketAnalysis{
		CropName: cropName,
		Region:   region,
		Sources:  []string{},
	}

	today := time.Now().Format("02-Jan-2006")
	prompt := fmt.Sprintf(marketTrendPrompt, today, cropName, region)

	trend, err := a.grounded.Fetch(ctx, prompt, marketRequired...)
	if err != nil {
		return nil, err
	}
	result.TrendInfo = trend
	result.Sources = append(result.Sources, sourcePerplexity)

	advice := a.enhancer.Expand(ctx, expand.Spec{
		Capability: "market",
		Model:      a.models.Pro,
		Required:   []string{"recommended_action", "confidence", "rationale", "alternate_markets", "notes"},
		ListFields: []string{"alternate_markets"},
	}, fmt.Sprintf(marketAdvicePrompt, cropName, region, extract.Indent(trend)))

	if advice == nil {
		zap.L().Warn("market advice expansion failed, returning trend-only analysis",
			zap.String("crop", cropName),
			zap.String("region", region),
		)
		return result, nil
	}

	result.RecommendedAction = advice.GetString("recommended_action", "")
	result.Confidence = getFloat(advice, "confidence")
	result.Rationale = advice.GetString("rationale", "")
	if markets, err := advice.StringList("alternate_markets"); err == nil {
		result.AlternateMarkets = markets
	}
	result.Notes = advice.GetString("notes", "")
	result.Sources = append(result.Sources, sourceGemini)

	return result, nil
}

// getFloat reads a numeric field, tolerating the string-encoded numbers
// some completions produce.
func getFloat(doc extract.Document, key string) float64 {
	switch v := doc[key].(type) {
	case float64:
		return v
	case string:
		var f float64
		if _, err := fmt.Sscanf(v, "%f", &f); err == nil {
			return f
		}
	}
	return 0
}
