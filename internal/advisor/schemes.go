package advisor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agrisense/agri-advisor/internal/expand"
	"github.com/agrisense/agri-advisor/internal/extract"
)

// MatchSchemes finds government agriculture schemes matching the farmer's
// profile. The endpoint never fails outright: every degradation is recorded
// in the Error field and the best available advice is still returned.
func (a *Advisor) MatchSchemes(ctx context.Context, req SchemeRequest) *SchemeAdvice {
	advice := &SchemeAdvice{
		MatchedSchemes: []Scheme{},
		Sources:        []string{},
	}

	refined, err := a.refineQuery(ctx, fmt.Sprintf(schemeRefinePrompt,
		req.FarmerName, req.Region, req.Crop, req.FarmSize, req.Need))
	if err != nil {
		zap.L().Error("scheme query refinement failed", zap.Error(err))
		advice.Error = fmt.Sprintf("Failed to refine query: %v", err)
		return advice
	}

	doc, err := a.grounded.Fetch(ctx, fmt.Sprintf(schemeSearchPrompt, refined), "schemes")
	if err != nil {
		zap.L().Error("scheme fetch failed", zap.Error(err))
		advice.Error = "Unable to fetch scheme data. Service temporarily unavailable."
		return advice
	}
	found := schemesFromList(doc, "schemes", "scheme_name")
	if len(found) == 0 {
		zap.L().Warn("scheme fetch returned no schemes")
		advice.Error = "Unable to fetch scheme data. Service temporarily unavailable."
		return advice
	}
	advice.Sources = append(advice.Sources, sourcePerplexity)

	expanded := a.enhancer.Expand(ctx, expand.Spec{
		Capability:         "schemes",
		Model:              a.models.Flash,
		Required:           []string{"matched_schemes", "personalized_recommendation", "next_steps"},
		NonEmptyListFields: []string{"matched_schemes"},
	}, fmt.Sprintf(schemeExpandPrompt, extract.Indent(req), extract.Indent(doc)))

	if expanded == nil {
		// Fall back to the grounded data verbatim.
		advice.MatchedSchemes = found
		advice.PersonalizedRecommendation = "Based on your profile, consider reviewing the schemes listed above."
		advice.NextSteps = "Contact your local agricultural extension office for application assistance."
		advice.Error = "Unable to generate personalized recommendations."
		return advice
	}

	advice.MatchedSchemes = schemesFromList(expanded, "matched_schemes", "name")
	advice.PersonalizedRecommendation = expanded.GetString("personalized_recommendation", "")
	advice.NextSteps = expanded.GetString("next_steps", "")
	advice.Sources = []string{sourcePerplexity, sourceGemini}
	return advice
}

// schemesFromList converts a list-of-objects field into typed schemes. The
// grounded provider names schemes "scheme_name" while the expansion contract
// uses "name"; nameKey selects the primary, with the other as fallback.
func schemesFromList(doc extract.Document, key, nameKey string) []Scheme {
	items, err := doc.List(key)
	if err != nil {
		return nil
	}

	schemes := make([]Scheme, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		entry := extract.Document(obj)
		name := entry.GetString(nameKey, "")
		if name == "" {
			if nameKey == "name" {
				name = entry.GetString("scheme_name", "")
			} else {
				name = entry.GetString("name", "")
			}
		}
		schemes = append(schemes, Scheme{
			Name:               name,
			Description:        entry.GetString("description", ""),
			Eligibility:        entry.GetString("eligibility", ""),
			Benefits:           entry.GetString("benefits", ""),
			ApplicationProcess: entry.GetString("application_process", ""),
			OfficialLink:       entry.GetString("official_link", ""),
		})
	}
	return schemes
}
