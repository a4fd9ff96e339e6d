package advisor

import (
	"context"

	"github.com/agrisense/agri-advisor/internal/expand"
	"github.com/agrisense/agri-advisor/internal/extract"
)

// fakeGrounded scripts the retrying fetch surface.
type fakeGrounded struct {
	doc      extract.Document
	text     string
	err      error
	prompts  []string
	required []string
}

func (f *fakeGrounded) Fetch(ctx context.Context, prompt string, required ...string) (extract.Document, error) {
	f.prompts = append(f.prompts, prompt)
	f.required = required
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func (f *fakeGrounded) FetchText(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fakeEnhancer scripts the expansion surface and records what was asked.
type fakeEnhancer struct {
	doc    extract.Document
	spec   expand.Spec
	prompt string
	calls  int
}

func (f *fakeEnhancer) Expand(ctx context.Context, spec expand.Spec, prompt string) extract.Document {
	f.calls++
	f.spec = spec
	f.prompt = prompt
	return f.doc
}

// fakeLLM scripts the general-purpose provider.
type fakeLLM struct {
	text        string
	err         error
	visionText  string
	visionErr   error
	prompts     []string
	visionCalls int
}

func (f *fakeLLM) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeLLM) GenerateVision(ctx context.Context, model, prompt string, image []byte, mimeType string) (string, error) {
	f.visionCalls++
	return f.visionText, f.visionErr
}

func testModels() Models {
	return Models{
		Pro:    "gemini-2.5-pro",
		Flash:  "gemini-2.5-flash",
		Vision: "gemini-2.5-flash",
	}
}
