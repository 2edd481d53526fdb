package render

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/dhamidi/ironlint/unit"
)

// TestGoldenTranscripts replays the archived compilation units and compares
// the rendered output against the recorded transcript. Each testdata archive
// holds a unit.yaml and the expected text.
func TestGoldenTranscripts(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(archives) == 0 {
		t.Fatal("no golden archives found")
	}

	for _, path := range archives {
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatal(err)
			}
			var unitData, expected []byte
			for _, f := range ar.Files {
				switch f.Name {
				case "unit.yaml":
					unitData = f.Data
				case "expected":
					expected = f.Data
				default:
					t.Fatalf("unexpected file %q in archive", f.Name)
				}
			}
			if unitData == nil {
				t.Fatal("archive has no unit.yaml")
			}

			u, err := unit.Decode(unitData)
			if err != nil {
				t.Fatal(err)
			}
			diags := unit.Check(u, nil)

			var buf bytes.Buffer
			r := NewTextRenderer(&buf)
			if err := r.Render(u.File, diags); err != nil {
				t.Fatal(err)
			}
			var summary Summary
			summary.Add(diags)
			if err := r.Close(summary); err != nil {
				t.Fatal(err)
			}

			got := strings.TrimRight(buf.String(), "\n")
			want := strings.TrimRight(string(expected), "\n")
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("transcript mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	var s Summary
	if s.Failed() {
		t.Error("empty summary should not fail")
	}
	s.Errors = 2
	s.Warnings = 1
	if !s.Failed() {
		t.Error("summary with errors should fail")
	}

	var buf bytes.Buffer
	if err := NewTextRenderer(&buf).Close(s); err != nil {
		t.Fatal(err)
	}
	want := "warning: 1 warning emitted\nerror: aborting due to 2 previous errors\n"
	if buf.String() != want {
		t.Errorf("Close output = %q, want %q", buf.String(), want)
	}
}
