// Package expand wraps the general-purpose provider call that turns a
// fetched document plus user context into a richer structured result.
package expand

import (
	"context"

	"go.uber.org/zap"

	"github.com/agrisense/agri-advisor/internal/extract"
	"github.com/agrisense/agri-advisor/pkg/gemini"
)

// Spec declares what a capability requires of an expansion result.
type Spec struct {
	// Capability names the pipeline for logging.
	Capability string
	// Model is the provider model identifier.
	Model string
	// Required keys that must be present in the extracted document.
	Required []string
	// ListFields must be list-typed when present (e.g. risk factors).
	ListFields []string
	// NonEmptyListFields must additionally contain at least one element.
	NonEmptyListFields []string
}

// Expander issues a single enhancement completion. No retry: expansion is
// enhancement, not critical path. Every failure collapses to nil; partial
// documents are never returned and errors never reach the caller.
type Expander struct {
	client gemini.Client
}

// New creates an Expander over the given general-purpose client.
func New(client gemini.Client) *Expander {
	return &Expander{client: client}
}

// Expand runs the prompt and returns the validated document, or nil when
// any step fails. The failing step and field are logged for diagnosis.
func (e *Expander) Expand(ctx context.Context, spec Spec, prompt string) extract.Document {
	log := zap.L().With(zap.String("capability", spec.Capability), zap.String("model", spec.Model))

	text, err := e.client.GenerateText(ctx, spec.Model, prompt)
	if err != nil {
		log.Warn("expansion call failed", zap.Error(err))
		return nil
	}
	if text == "" {
		log.Warn("expansion returned empty completion")
		return nil
	}

	doc, err := extract.FromText(text)
	if err != nil {
		log.Warn("expansion extraction failed", zap.Error(err))
		return nil
	}
	if err := extract.Validate(doc, spec.Required...); err != nil {
		log.Warn("expansion document rejected", zap.Error(err))
		return nil
	}

	for _, key := range spec.ListFields {
		if _, ok := doc[key]; !ok {
			continue
		}
		if _, err := doc.List(key); err != nil {
			log.Warn("expansion field has wrong shape", zap.String("field", key), zap.Error(err))
			return nil
		}
	}
	for _, key := range spec.NonEmptyListFields {
		items, err := doc.List(key)
		if err != nil {
			log.Warn("expansion field has wrong shape", zap.String("field", key), zap.Error(err))
			return nil
		}
		if len(items) == 0 {
			log.Warn("expansion list field is empty", zap.String("field", key))
			return nil
		}
	}

	return doc
}
