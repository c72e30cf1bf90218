package lint

import (
	"sort"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/emblem-lang/emblem/parser"
	"github.com/emblem-lang/emblem/source"
)

func lintString(t *testing.T, src string) []string {
	t.Helper()
	file, errs := parser.Parse(source.NewFileName("test.em"), source.NewFileContent(src))
	qt.Assert(t, qt.HasLen(errs, 0))
	var ids []string
	for _, log := range Run(file, Registry()) {
		ids = append(ids, log.ID())
	}
	return ids
}

func hasID(ids []string, id string) bool {
	for _, got := range ids {
		if got == id {
			return true
		}
	}
	return false
}

func TestLintCleanInputHasNoProblems(t *testing.T) {
	ids := lintString(t, "hello world\n")
	qt.Assert(t, qt.HasLen(ids, 0))
}

func TestLintSpiltGlue(t *testing.T) {
	ids := lintString(t, "a ~ b\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "spilt-glue")))
}

func TestLintEmptyAttrs(t *testing.T) {
	ids := lintString(t, ".foo[]{x}\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "empty-attrs")))
}

func TestLintAttrOrdering(t *testing.T) {
	ids := lintString(t, ".foo[a,b=c,d]{x}\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "attr-ordering")))
}

func TestLintDuplicateAttrs(t *testing.T) {
	ids := lintString(t, ".foo[bar,bar]{x}\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "duplicate-attrs")))
}

func TestLintCommandNaming(t *testing.T) {
	ids := lintString(t, ".Foo_Bar{x}\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "command-naming")))
}

func TestLintEmphDelimiters(t *testing.T) {
	ids := lintString(t, "*oops*\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "emph-delimiters")))
}

func TestLintNumArgsTooFew(t *testing.T) {
	ids := lintString(t, ".bf\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "num-args")))
}

func TestLintNumPluses(t *testing.T) {
	ids := lintString(t, ".foo++{x}\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "num-pluses")))
}

func TestLintSugarUsage(t *testing.T) {
	ids := lintString(t, ".it{word}\n")
	qt.Assert(t, qt.IsTrue(hasID(ids, "sugar-usage")))
}

func TestLintUnaffectedCommandIgnoredByArityRules(t *testing.T) {
	ids := lintString(t, ".custom{a}{b}{c}\n")
	qt.Assert(t, qt.IsFalse(hasID(ids, "num-args")))
	qt.Assert(t, qt.IsFalse(hasID(ids, "num-attrs")))
}

// A paragraph whose two lines each trip a different rule should report
// each rule exactly once. The ids are sorted before comparing, so only
// which rules fired and how often is checked, not their order.
// Mismatches here are easiest to read as a diff, so this one uses
// cmp.Diff directly rather than qt's built-in comparers.
func TestLintMultipleProblemsInOneParagraph(t *testing.T) {
	ids := lintString(t, "*oops*\n.Foo_Bar{x}\n")
	sort.Strings(ids)
	want := []string{"command-naming", "emph-delimiters"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("lint ids mismatch (-want +got):\n%s", diff)
	}
}

func TestLintIDsContainDash(t *testing.T) {
	for _, l := range Registry() {
		qt.Assert(t, qt.IsTrue(strings.ContainsAny(l.ID(), "-")))
	}
}
