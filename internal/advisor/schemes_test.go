package advisor

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agri-advisor/internal/extract"
)

func schemeReq() SchemeRequest {
	return SchemeRequest{
		FarmerName: "Ramesh",
		Region:     "Maharashtra",
		Crop:       "cotton",
		FarmSize:   "5 acres",
		Need:       "drip irrigation subsidy",
	}
}

func groundedSchemes() extract.Document {
	return extract.Document{
		"schemes": []any{
			map[string]any{
				"scheme_name":         "PM-KUSUM",
				"description":         "solar pump subsidy",
				"eligibility":         "smallholders",
				"benefits":            "60% subsidy",
				"application_process": "apply online",
				"official_link":       "https://pmkusum.mnre.gov.in",
			},
		},
		"source": "gov.in",
	}
}

func TestMatchSchemes_FullPipeline(t *testing.T) {
	grounded := &fakeGrounded{doc: groundedSchemes()}
	enhancer := &fakeEnhancer{doc: extract.Document{
		"matched_schemes": []any{
			map[string]any{
				"name":        "PM-KUSUM",
				"description": "solar pump subsidy matched to your drip irrigation need",
			},
		},
		"personalized_recommendation": "PM-KUSUM fits your 5 acre cotton farm.",
		"next_steps":                  "Gather land records and apply online.",
	}}

	a := New(grounded, enhancer, &fakeLLM{text: "drip irrigation subsidy schemes Maharashtra cotton"}, testModels())
	advice := a.MatchSchemes(context.Background(), schemeReq())

	assert.Empty(t, advice.Error)
	require.Len(t, advice.MatchedSchemes, 1)
	assert.Equal(t, "PM-KUSUM", advice.MatchedSchemes[0].Name)
	assert.Equal(t, "PM-KUSUM fits your 5 acre cotton farm.", advice.PersonalizedRecommendation)
	assert.Equal(t, []string{"perplexity", "gemini"}, advice.Sources)

	assert.Equal(t, "schemes", enhancer.spec.Capability)
	assert.Equal(t, "gemini-2.5-flash", enhancer.spec.Model)
	assert.Contains(t, enhancer.spec.NonEmptyListFields, "matched_schemes")
}

func TestMatchSchemes_RefineFailure(t *testing.T) {
	a := New(&fakeGrounded{}, &fakeEnhancer{}, &fakeLLM{err: eris.New("quota exceeded")}, testModels())
	advice := a.MatchSchemes(context.Background(), schemeReq())

	assert.Contains(t, advice.Error, "Failed to refine query")
	assert.Empty(t, advice.MatchedSchemes)
	assert.Empty(t, advice.Sources)
}

func TestMatchSchemes_FetchFailure(t *testing.T) {
	grounded := &fakeGrounded{err: eris.New("provider unavailable")}
	a := New(grounded, &fakeEnhancer{}, &fakeLLM{text: "refined query"}, testModels())
	advice := a.MatchSchemes(context.Background(), schemeReq())

	assert.Equal(t, "Unable to fetch scheme data. Service temporarily unavailable.", advice.Error)
	assert.Empty(t, advice.Sources)
}

func TestMatchSchemes_EmptySchemeList(t *testing.T) {
	grounded := &fakeGrounded{doc: extract.Document{"schemes": []any{}}}
	a := New(grounded, &fakeEnhancer{}, &fakeLLM{text: "refined query"}, testModels())
	advice := a.MatchSchemes(context.Background(), schemeReq())

	assert.Equal(t, "Unable to fetch scheme data. Service temporarily unavailable.", advice.Error)
}

func TestMatchSchemes_ExpansionFallback(t *testing.T) {
	grounded := &fakeGrounded{doc: groundedSchemes()}
	enhancer := &fakeEnhancer{doc: nil}

	a := New(grounded, enhancer, &fakeLLM{text: "refined query"}, testModels())
	advice := a.MatchSchemes(context.Background(), schemeReq())

	require.Len(t, advice.MatchedSchemes, 1)
	assert.Equal(t, "PM-KUSUM", advice.MatchedSchemes[0].Name, "grounded scheme_name maps to Name")
	assert.Equal(t, "Based on your profile, consider reviewing the schemes listed above.", advice.PersonalizedRecommendation)
	assert.Equal(t, "Contact your local agricultural extension office for application assistance.", advice.NextSteps)
	assert.Equal(t, "Unable to generate personalized recommendations.", advice.Error)
	assert.Equal(t, []string{"perplexity"}, advice.Sources)
}
