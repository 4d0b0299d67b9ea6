package galerrors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/galaxypad/galaxy/internal/schema"
)

// Span locates an error in the original program text.
type Span struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Report is the canonical structured error type for this interpreter.
// Every error returned across package boundaries (parser, eval, modulate,
// transport) can be unwrapped back to a Report via AsReport.
type Report struct {
	Schema  string         `json:"schema"` // always schema.ErrorV1
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Span    *Span          `json:"span,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report so it survives errors.As unwrapping while
// still satisfying the error interface.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return fmt.Sprintf("%s: %s", e.Rep.Code, e.Rep.Message)
}

// AsReport extracts a *Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// New builds a Report and wraps it as an error.
func New(code, phase, message string) error {
	return &ReportError{Rep: &Report{
		Schema:  schema.ErrorV1,
		Code:    code,
		Phase:   phase,
		Message: message,
	}}
}

// Newf is New with fmt.Sprintf-style formatting of the message.
func Newf(code, phase, format string, args ...any) error {
	return New(code, phase, fmt.Sprintf(format, args...))
}

// WithSpan attaches a source span to a Report-wrapped error, returning the
// same error unchanged if it does not wrap a Report.
func WithSpan(err error, line, col int) error {
	if rep, ok := AsReport(err); ok {
		rep.Span = &Span{Line: line, Column: col}
	}
	return err
}

// WithData attaches structured context data to a Report-wrapped error.
func WithData(err error, data map[string]any) error {
	if rep, ok := AsReport(err); ok {
		rep.Data = data
	}
	return err
}

// ToJSON renders a Report as deterministic JSON, indented unless compact
// is requested.
func (r *Report) ToJSON(compact bool) ([]byte, error) {
	data, err := schema.MarshalDeterministic(r)
	if err != nil {
		return nil, err
	}
	if compact {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
