package advisor

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agri-advisor/internal/extract"
)

func profitReq() ProfitRequest {
	return ProfitRequest{
		Region:        "Punjab",
		Crop:          "wheat",
		FarmSize:      "10 acres",
		ExpectedYield: "100 quintals",
		CostFactors:   "₹50000 total input cost",
	}
}

func groundedProfit() extract.Document {
	return extract.Document{
		"market_data": map[string]any{
			"current_price":  "₹2250 per quintal",
			"price_trend":    "firm",
			"price_forecast": "stable",
		},
		"input_costs":  map[string]any{"fertilizer": "₹4000 per acre"},
		"yield_data":   map[string]any{"average_yield": "20 quintals per acre"},
		"risk_factors": []any{"late rains", "rust outbreaks", "procurement delays", "diesel prices"},
	}
}

func TestPredictProfit_FullPipeline(t *testing.T) {
	grounded := &fakeGrounded{doc: groundedProfit()}
	enhancer := &fakeEnhancer{doc: extract.Document{
		"crop_name":        "wheat",
		"region":           "Punjab",
		"estimated_yield":  "100 quintals",
		"market_price":     "₹2250 per quintal",
		"total_cost":       "₹50000",
		"expected_revenue": "₹225000",
		"expected_profit":  "₹175000",
		"risk_factors":     []any{"late rains", "rust outbreaks"},
		"recommendation":   "Proceed; margins are healthy.",
		"notes":            "Lock in procurement early.",
	}}

	a := New(grounded, enhancer, &fakeLLM{text: "wheat profit Punjab 100 quintals"}, testModels())
	pred := a.PredictProfit(context.Background(), profitReq())

	assert.Empty(t, pred.Error)
	assert.Equal(t, "₹225000", pred.ExpectedRevenue)
	assert.Equal(t, "₹175000", pred.ExpectedProfit)
	assert.Equal(t, []string{"late rains", "rust outbreaks"}, pred.RiskFactors)
	assert.Equal(t, []string{"perplexity", "gemini"}, pred.Sources)

	require.Equal(t, []string{"market_data", "input_costs", "yield_data", "risk_factors"}, grounded.required)
	assert.Equal(t, "profit", enhancer.spec.Capability)
}

func TestPredictProfit_NumericFallbackOnFetchFailure(t *testing.T) {
	grounded := &fakeGrounded{err: eris.New("provider unavailable")}
	a := New(grounded, &fakeEnhancer{}, &fakeLLM{text: "refined query"}, testModels())

	pred := a.PredictProfit(context.Background(), profitReq())

	// wheat averages (2000+2400)/2 = 2200; 100 quintals and ₹50000 cost.
	assert.Equal(t, "₹220000", pred.ExpectedRevenue)
	assert.Equal(t, "₹170000", pred.ExpectedProfit)
	assert.Equal(t, "340.0", pred.ROI)
	assert.Contains(t, pred.MarketPrice, "2200")
	assert.Equal(t, []string{"fallback_calculation"}, pred.Sources)
	assert.Equal(t, "Unable to fetch profit data. Service temporarily unavailable.", pred.Error)
	assert.NotEmpty(t, pred.RiskFactors)
}

func TestPredictProfit_NumericFallbackOnRefineFailure(t *testing.T) {
	a := New(&fakeGrounded{}, &fakeEnhancer{}, &fakeLLM{err: eris.New("quota exceeded")}, testModels())
	pred := a.PredictProfit(context.Background(), profitReq())

	assert.Contains(t, pred.Error, "Failed to refine query")
	assert.Equal(t, "₹220000", pred.ExpectedRevenue)
	assert.Equal(t, []string{"fallback_calculation"}, pred.Sources)
}

func TestPredictProfit_ZeroCostROISentinel(t *testing.T) {
	grounded := &fakeGrounded{err: eris.New("provider unavailable")}
	a := New(grounded, &fakeEnhancer{}, &fakeLLM{text: "refined query"}, testModels())

	req := profitReq()
	req.CostFactors = "unsure about costs"
	pred := a.PredictProfit(context.Background(), req)

	assert.Equal(t, "0.0", pred.ROI, "zero cost must not divide")
	assert.Equal(t, "₹220000", pred.ExpectedProfit, "profit equals revenue when cost is unknown")
}

func TestPredictProfit_ExpansionFallback(t *testing.T) {
	grounded := &fakeGrounded{doc: groundedProfit()}
	enhancer := &fakeEnhancer{doc: nil}

	a := New(grounded, enhancer, &fakeLLM{text: "refined query"}, testModels())
	pred := a.PredictProfit(context.Background(), profitReq())

	assert.Equal(t, "₹2250 per quintal", pred.MarketPrice, "price salvaged from grounded document")
	assert.Len(t, pred.RiskFactors, 3, "risk factors capped at three")
	assert.Equal(t, "Insufficient data for a complete recommendation.", pred.Recommendation)
	assert.Equal(t, "Unable to generate detailed profit prediction.", pred.Error)
	assert.Equal(t, []string{"perplexity"}, pred.Sources)
}
