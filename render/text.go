package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/ironlint/lint"
	"github.com/dhamidi/ironlint/syntax"
)

// TextRenderer writes annotated diagnostic blocks:
//
//	error[E0382]: use of partially moved value: `a`
//	 --> src/main.rs:6:11
//	  |
//	5 |     let [_, _, _x] = a;
//	  |                -- value partially moved here
//	6 |     match a {
//	  |           ^ value used here after partial move
//	  |
//	  = note: partial move occurs because `a[..]` has type `(String, String)`, ...
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(file *syntax.File, diags []lint.Diagnostic) error {
	lines := strings.Split(file.Source, "\n")
	for _, d := range diags {
		if err := r.renderOne(file, lines, d); err != nil {
			return err
		}
	}
	return nil
}

// annotation is one labeled span prepared for printing.
type annotation struct {
	span    syntax.Span
	message string
	primary bool
}

func (r *TextRenderer) renderOne(file *syntax.File, lines []string, d lint.Diagnostic) error {
	var b strings.Builder

	if d.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", d.Severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", d.Severity, d.Message)
	}

	anns := []annotation{{span: d.Primary.Span, message: d.Primary.Message, primary: true}}
	for _, label := range d.Secondary {
		anns = append(anns, annotation{span: label.Span, message: label.Message})
	}
	sort.SliceStable(anns, func(i, j int) bool { return anns[i].span.Before(anns[j].span) })

	gutter := gutterWidth(anns)
	pad := strings.Repeat(" ", gutter)

	fmt.Fprintf(&b, "%s--> %s:%d:%d\n", pad, file.Name, d.Primary.Span.Start.Line, d.Primary.Span.Start.Column)
	fmt.Fprintf(&b, "%s |\n", pad)

	lastLine := 0
	for _, ann := range anns {
		line := ann.span.Start.Line
		if line < 1 || line > len(lines) {
			continue
		}
		if line != lastLine {
			if lastLine != 0 && line > lastLine+1 {
				fmt.Fprintf(&b, "%s\n", strings.Repeat(".", gutter+1))
			}
			fmt.Fprintf(&b, "%*d | %s\n", gutter, line, lines[line-1])
			lastLine = line
		}
		fmt.Fprintf(&b, "%s | %s\n", pad, underline(ann, lines[line-1]))
	}

	if len(d.Notes) > 0 {
		fmt.Fprintf(&b, "%s |\n", pad)
		for _, note := range d.Notes {
			fmt.Fprintf(&b, "%s = note: %s\n", pad, note)
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

// underline builds the marker row under a source line: spaces up to the span
// start, then ^^^ (primary) or --- (secondary) across the span, then the label.
func underline(ann annotation, sourceLine string) string {
	start := ann.span.Start.Column
	if start < 1 {
		start = 1
	}
	end := ann.span.End.Column
	if ann.span.End.Line != ann.span.Start.Line || end <= start {
		end = len(sourceLine) + 1
	}
	marker := "-"
	if ann.primary {
		marker = "^"
	}
	row := strings.Repeat(" ", start-1) + strings.Repeat(marker, end-start)
	if ann.message != "" {
		row += " " + ann.message
	}
	return row
}

func gutterWidth(anns []annotation) int {
	max := 1
	for _, ann := range anns {
		if ann.span.Start.Line > max {
			max = ann.span.Start.Line
		}
	}
	return len(fmt.Sprint(max))
}

// Close writes the trailing aggregation lines and is where the exit-status
// policy surfaces to the user.
func (r *TextRenderer) Close(summary Summary) error {
	var b strings.Builder
	if summary.Warnings == 1 {
		b.WriteString("warning: 1 warning emitted\n")
	} else if summary.Warnings > 1 {
		fmt.Fprintf(&b, "warning: %d warnings emitted\n", summary.Warnings)
	}
	if summary.Errors == 1 {
		b.WriteString("error: aborting due to previous error\n")
	} else if summary.Errors > 1 {
		fmt.Fprintf(&b, "error: aborting due to %d previous errors\n", summary.Errors)
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}
