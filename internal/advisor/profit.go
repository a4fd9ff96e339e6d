package advisor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agrisense/agri-advisor/internal/expand"
	"github.com/agrisense/agri-advisor/internal/extract"
)

// profitRequired is the section set the grounded profit document must carry.
var profitRequired = []string{"market_data", "input_costs", "yield_data", "risk_factors"}

// profitExpandRequired is the full field contract of the expansion result.
var profitExpandRequired = []string{
	"crop_name", "region", "estimated_yield", "market_price", "total_cost",
	"expected_revenue", "expected_profit", "risk_factors", "recommendation", "notes",
}

// PredictProfit estimates revenue and profit for a planned crop. The
// prediction never fails outright: when no provider data can be obtained the
// numbers are computed from the static price table and the user's own yield
// and cost figures, with the degradation recorded in the Error field.
func (a *Advisor) PredictProfit(ctx context.Context, req ProfitRequest) *ProfitPrediction {
	pred := &ProfitPrediction{
		CropName:        req.Crop,
		Region:          req.Region,
		EstimatedYield:  req.ExpectedYield,
		MarketPrice:     "Not available",
		TotalCost:       "Not available",
		ExpectedRevenue: "Not available",
		ExpectedProfit:  "Not available",
		RiskFactors:     []string{},
		Sources:         []string{},
	}

	refined, err := a.refineQuery(ctx, fmt.Sprintf(profitRefinePrompt,
		req.Region, req.Crop, req.FarmSize, req.ExpectedYield, req.CostFactors))
	if err != nil {
		zap.L().Error("profit query refinement failed", zap.Error(err))
		fallbackProfit(req, pred, fmt.Sprintf("Failed to refine query: %v", err))
		return pred
	}

	doc, err := a.grounded.Fetch(ctx, fmt.Sprintf(profitSearchPrompt, refined), profitRequired...)
	if err != nil {
		zap.L().Error("profit data fetch failed", zap.Error(err))
		fallbackProfit(req, pred, "Unable to fetch profit data. Service temporarily unavailable.")
		return pred
	}
	pred.Sources = append(pred.Sources, sourcePerplexity)

	expanded := a.enhancer.Expand(ctx, expand.Spec{
		Capability: "profit",
		Model:      a.models.Flash,
		Required:   profitExpandRequired,
		ListFields: []string{"risk_factors"},
	}, fmt.Sprintf(profitExpandPrompt, extract.Indent(req), extract.Indent(doc)))

	if expanded == nil {
		// Salvage what the grounded document carries directly.
		if market := doc.GetDocument("market_data"); market != nil {
			pred.MarketPrice = market.GetString("current_price", "Not available")
		}
		if risks, err := doc.StringList("risk_factors"); err == nil {
			if len(risks) > 3 {
				risks = risks[:3]
			}
			pred.RiskFactors = risks
		} else {
			pred.RiskFactors = []string{"Market volatility", "Weather uncertainty"}
		}
		pred.Notes = "Based on current market data, please consult a local agricultural expert for more specific advice."
		pred.Recommendation = "Insufficient data for a complete recommendation."
		pred.Error = "Unable to generate detailed profit prediction."
		return pred
	}

	pred.CropName = expanded.GetString("crop_name", pred.CropName)
	pred.Region = expanded.GetString("region", pred.Region)
	pred.EstimatedYield = expanded.GetString("estimated_yield", pred.EstimatedYield)
	pred.MarketPrice = expanded.GetString("market_price", pred.MarketPrice)
	pred.TotalCost = expanded.GetString("total_cost", pred.TotalCost)
	pred.ExpectedRevenue = expanded.GetString("expected_revenue", pred.ExpectedRevenue)
	pred.ExpectedProfit = expanded.GetString("expected_profit", pred.ExpectedProfit)
	if risks, err := expanded.StringList("risk_factors"); err == nil {
		pred.RiskFactors = risks
	}
	pred.Recommendation = expanded.GetString("recommendation", "")
	pred.Notes = expanded.GetString("notes", "")
	pred.Sources = append(pred.Sources, sourceGemini)
	return pred
}

// fallbackProfit fills the prediction deterministically from the reference
// price table and the user's own figures. ROI uses a 0.0 sentinel when the
// cost is zero or unparseable.
func fallbackProfit(req ProfitRequest, pred *ProfitPrediction, errMsg string) {
	prices := lookupPriceRange(req.Crop)
	avgPrice := prices.average()
	yield := parseNumber(req.ExpectedYield)
	cost := parseNumber(req.CostFactors)

	revenue := yield * avgPrice
	profit := revenue - cost
	roi := "0.0"
	if cost > 0 {
		roi = fmt.Sprintf("%.1f", profit/cost*100)
	}

	pred.MarketPrice = fmt.Sprintf("₹%.0f per quintal (estimated)", avgPrice)
	pred.TotalCost = fmt.Sprintf("₹%.0f", cost)
	pred.ExpectedRevenue = fmt.Sprintf("₹%.0f", revenue)
	pred.ExpectedProfit = fmt.Sprintf("₹%.0f", profit)
	pred.ROI = roi
	pred.RiskFactors = []string{"Market volatility", "Weather uncertainty"}
	pred.Recommendation = "Estimates use reference prices, not live market data. Verify current rates at your local mandi before committing."
	pred.Notes = fmt.Sprintf("Calculated from the reference price range ₹%.0f-₹%.0f per quintal for %s.", prices.Min, prices.Max, req.Crop)
	pred.Error = errMsg
	pred.Sources = []string{sourceFallback}

	zap.L().Warn("profit prediction degraded to static calculation",
		zap.String("crop", req.Crop),
		zap.Float64("assumed_price", avgPrice),
		zap.Float64("expected_revenue", revenue),
	)
}
