package advisor

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/agrisense/agri-advisor/internal/extract"
	"github.com/rotisserie/eris"
)

// DiagnoseCrop analyzes a crop image for disease via the vision model. A
// completion with no JSON at all is treated as a narrative answer and folded
// into the treatment field; a malformed or incomplete JSON document is an
// error, since it means the model tried and failed to follow the contract.
func (a *Advisor) DiagnoseCrop(ctx context.Context, image []byte, mimeType string) (*CropDiagnosis, error) {
	text, err := a.llm.GenerateVision(ctx, a.models.Vision, cropDoctorPrompt, image, mimeType)
	if err != nil {
		return nil, eris.Wrap(err, "crop diagnosis")
	}
	if text == "" {
		return nil, eris.New("crop diagnosis: empty response from vision model")
	}

	doc, err := extract.FromText(text)
	if err != nil {
		if errors.Is(err, extract.ErrNoJSON) {
			// The model answered in prose; surface it rather than failing.
			zap.L().Warn("vision model returned prose instead of JSON")
			return &CropDiagnosis{
				DiseaseName:          "Analysis completed",
				Severity:             "Unable to determine",
				RecommendedTreatment: text,
			}, nil
		}
		return nil, eris.Wrap(err, "crop diagnosis")
	}
	if err := extract.Validate(doc, "disease_name", "severity", "recommended_treatment"); err != nil {
		return nil, eris.Wrap(err, "crop diagnosis")
	}

	return &CropDiagnosis{
		DiseaseName:          doc.GetString("disease_name", ""),
		Severity:             doc.GetString("severity", ""),
		RecommendedTreatment: doc.GetString("recommended_treatment", ""),
	}, nil
}
