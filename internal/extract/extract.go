// Package extract locates and parses JSON documents embedded in free-form
// LLM completion text, and validates them against caller-declared field sets.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Document is a parsed JSON object with no fixed schema. Schema expectations
// are declared by callers via Validate and StringList.
type Document map[string]any

// ErrNoJSON indicates the text contains no brace-delimited JSON object.
var ErrNoJSON = eris.New("extract: no JSON object found")

// ParseError indicates a brace-delimited candidate was found but is not
// valid JSON. It carries the decoder's diagnostic.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("extract: invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports the first required key absent from a document.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("extract: missing required field %q", e.Key)
}

// WrongShapeError reports a field present with an unexpected type.
type WrongShapeError struct {
	Key  string
	Want string
}

func (e *WrongShapeError) Error() string {
	return fmt.Sprintf("extract: field %q is not a %s", e.Key, e.Want)
}

// FromText extracts the single JSON object assumed to be embedded in text.
// It slices from the first '{' to the last '}' and parses strictly. Returns
// ErrNoJSON when no candidate exists, or *ParseError when the candidate does
// not parse. Best-effort: nested or multiple objects, and braces inside
// string literals, can mislead the boundary search.
func FromText(text string) (Document, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, ErrNoJSON
	}

	var doc Document
	if err := json.Unmarshal([]byte(text[start:end+1]), &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	return doc, nil
}

// Validate checks that every required key is present in doc. Validation is
// all-or-nothing: the first missing key fails the whole document.
func Validate(doc Document, required ...string) error {
	for _, key := range required {
		if _, ok := doc[key]; !ok {
			return &MissingFieldError{Key: key}
		}
	}
	return nil
}

// GetString returns the field as a string, or fallback when absent or not a
// string.
func (d Document) GetString(key, fallback string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return fallback
}

// GetDocument returns a nested object field, or nil when absent or not an
// object.
func (d Document) GetDocument(key string) Document {
	if v, ok := d[key].(map[string]any); ok {
		return Document(v)
	}
	return nil
}

// List returns the field as a raw list. Returns *WrongShapeError when the
// field is not list-typed.
func (d Document) List(key string) ([]any, error) {
	raw, ok := d[key].([]any)
	if !ok {
		return nil, &WrongShapeError{Key: key, Want: "list"}
	}
	return raw, nil
}

// StringList returns the field coerced to a list of strings. Non-string
// elements are stringified. Returns *WrongShapeError when the field is not
// list-typed.
func (d Document) StringList(key string) ([]string, error) {
	raw, ok := d[key].([]any)
	if !ok {
		return nil, &WrongShapeError{Key: key, Want: "list"}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out, nil
}

// Indent serializes a value as indented JSON for embedding into prompts.
// Falls back to fmt formatting if marshalling fails.
func Indent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
