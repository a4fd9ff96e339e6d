package advisor

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnoseCrop_Success(t *testing.T) {
	llm := &fakeLLM{visionText: `Here is my assessment:
{
  "disease_name": "Late blight",
  "severity": "High",
  "recommended_treatment": "Apply copper-based fungicide and remove affected foliage."
}`}
	a := New(&fakeGrounded{}, &fakeEnhancer{}, llm, testModels())

	diag, err := a.DiagnoseCrop(context.Background(), []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Late blight", diag.DiseaseName)
	assert.Equal(t, "High", diag.Severity)
	assert.Equal(t, 1, llm.visionCalls)
}

func TestDiagnoseCrop_ProseFallback(t *testing.T) {
	llm := &fakeLLM{visionText: "The leaves look healthy overall. Keep watering on schedule."}
	a := New(&fakeGrounded{}, &fakeEnhancer{}, llm, testModels())

	diag, err := a.DiagnoseCrop(context.Background(), []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Analysis completed", diag.DiseaseName)
	assert.Equal(t, "Unable to determine", diag.Severity)
	assert.Equal(t, llm.visionText, diag.RecommendedTreatment)
}

func TestDiagnoseCrop_Errors(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeLLM
	}{
		{"provider_error", &fakeLLM{visionErr: eris.New("rpc failed")}},
		{"empty_response", &fakeLLM{visionText: ""}},
		{"malformed_json", &fakeLLM{visionText: `{"disease_name": `}},
		{"missing_field", &fakeLLM{visionText: `{"disease_name": "rust"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(&fakeGrounded{}, &fakeEnhancer{}, tt.llm, testModels())
			diag, err := a.DiagnoseCrop(context.Background(), []byte("img"), "image/png")
			require.Error(t, err)
			assert.Nil(t, diag)
		})
	}
}
