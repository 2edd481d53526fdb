package lint

import (
	"sort"
	"testing"

	"github.com/dhamidi/ironlint/syntax"
)

var (
	testWarnLint = Register(&Lint{Name: "test_warn", Doc: "test lint", Default: LevelWarn})
	testDenyLint = Register(&Lint{Name: "test_deny", Doc: "test lint", Default: LevelDeny})
	testHardLint = Register(&Lint{Name: "test_hard", Code: "E9999", Doc: "test error", Hard: true})
)

func spanAt(line, col int) syntax.Span {
	return syntax.Span{
		Start: syntax.Position{File: "test.rs", Line: line, Column: col},
		End:   syntax.Position{File: "test.rs", Line: line, Column: col + 1},
	}
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]Level{"allow": LevelAllow, "warn": LevelWarn, "deny": LevelDeny} {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseLevel("forbid"); err == nil {
		t.Error("ParseLevel(forbid): want error")
	}
}

func TestLevelsFor(t *testing.T) {
	levels := Levels{"test_warn": LevelDeny, "test_hard": LevelAllow}

	if got := levels.For(testWarnLint); got != LevelDeny {
		t.Errorf("override: got %v, want deny", got)
	}
	if got := levels.For(testDenyLint); got != LevelDeny {
		t.Errorf("default: got %v, want deny", got)
	}
	if got := levels.For(testHardLint); got != LevelDeny {
		t.Errorf("hard lints ignore configuration: got %v, want deny", got)
	}
}

func TestLevelsSetUnknownLint(t *testing.T) {
	levels := Levels{}
	if err := levels.Set("no_such_lint", LevelAllow); err == nil {
		t.Error("Set(no_such_lint): want error")
	}
}

func TestPassAppliesLevels(t *testing.T) {
	pass := NewPass(&syntax.File{Name: "test.rs"}, Levels{"test_deny": LevelAllow})

	pass.Report(Diagnostic{Lint: testDenyLint, Message: "suppressed", Primary: Label{Span: spanAt(1, 1)}})
	pass.Report(Diagnostic{Lint: testWarnLint, Message: "kept", Primary: Label{Span: spanAt(2, 1)}})

	diags := pass.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Message != "kept" || diags[0].Severity != SeverityWarning {
		t.Errorf("got %q at %v, want kept warning", diags[0].Message, diags[0].Severity)
	}
}

func TestPassSortsBySpan(t *testing.T) {
	pass := NewPass(&syntax.File{Name: "test.rs"}, nil)

	pass.Report(Diagnostic{Lint: testWarnLint, Message: "third", Primary: Label{Span: spanAt(9, 1)}})
	pass.Report(Diagnostic{Lint: testWarnLint, Message: "first", Primary: Label{Span: spanAt(2, 5)}})
	pass.Report(Diagnostic{Lint: testWarnLint, Message: "second", Primary: Label{Span: spanAt(2, 9)}})

	var got []string
	for _, d := range pass.Diagnostics() {
		got = append(got, d.Message)
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestPassStableOnEqualSpans(t *testing.T) {
	pass := NewPass(&syntax.File{Name: "test.rs"}, nil)
	span := spanAt(2, 11)

	pass.Report(Diagnostic{Lint: testDenyLint, Message: "reported first", Primary: Label{Span: span}})
	pass.Report(Diagnostic{Lint: testWarnLint, Message: "reported second", Primary: Label{Span: span}})

	diags := pass.Diagnostics()
	if diags[0].Message != "reported first" || diags[1].Message != "reported second" {
		t.Errorf("equal spans reordered: %q, %q", diags[0].Message, diags[1].Message)
	}
}

func TestPassErrorCount(t *testing.T) {
	pass := NewPass(&syntax.File{Name: "test.rs"}, nil)
	pass.Report(Diagnostic{Lint: testHardLint, Message: "boom", Primary: Label{Span: spanAt(1, 1)}})
	pass.Report(Diagnostic{Lint: testWarnLint, Message: "meh", Primary: Label{Span: spanAt(2, 1)}})

	if got := pass.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount() = %d, want 1", got)
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) < 3 {
		t.Fatalf("got %d registered lints, want at least the test lints", len(all))
	}
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = l.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("All() not sorted by name: %v", names)
	}
}
