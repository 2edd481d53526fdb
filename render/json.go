package render

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/ironlint/lint"
	"github.com/dhamidi/ironlint/syntax"
)

// JSONRenderer accumulates all files and emits a single document on Close.
type JSONRenderer struct {
	w     io.Writer
	files []jsonFile
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w}
}

type jsonDocument struct {
	Files    []jsonFile `json:"files"`
	Errors   int        `json:"errors"`
	Warnings int        `json:"warnings"`
}

type jsonFile struct {
	Name        string           `json:"name"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

type jsonDiagnostic struct {
	Lint     string      `json:"lint,omitempty"`
	Code     string      `json:"code,omitempty"`
	Severity string      `json:"severity"`
	Message  string      `json:"message"`
	Primary  jsonLabel   `json:"primary"`
	Labels   []jsonLabel `json:"labels,omitempty"`
	Notes    []string    `json:"notes,omitempty"`
}

type jsonLabel struct {
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Message   string `json:"message,omitempty"`
}

func (r *JSONRenderer) Render(file *syntax.File, diags []lint.Diagnostic) error {
	f := jsonFile{Name: file.Name, Diagnostics: []jsonDiagnostic{}}
	for _, d := range diags {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code,
			Message:  d.Message,
			Primary:  toJSONLabel(d.Primary),
			Notes:    d.Notes,
		}
		if d.Lint != nil {
			jd.Lint = d.Lint.Name
		}
		for _, label := range d.Secondary {
			jd.Labels = append(jd.Labels, toJSONLabel(label))
		}
		f.Diagnostics = append(f.Diagnostics, jd)
	}
	r.files = append(r.files, f)
	return nil
}

func toJSONLabel(label lint.Label) jsonLabel {
	return jsonLabel{
		Line:      label.Span.Start.Line,
		Column:    label.Span.Start.Column,
		EndLine:   label.Span.End.Line,
		EndColumn: label.Span.End.Column,
		Message:   label.Message,
	}
}

func (r *JSONRenderer) Close(summary Summary) error {
	doc := jsonDocument{Files: r.files, Errors: summary.Errors, Warnings: summary.Warnings}
	if doc.Files == nil {
		doc.Files = []jsonFile{}
	}
	text, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = r.w.Write(text)
	return err
}
