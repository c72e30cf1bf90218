package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLexCmdPrintsTokens(t *testing.T) {
	out, err := runCmd(t, "hello\n", "lex")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "word") {
		t.Fatalf("expected a word token in output, got %q", out)
	}
}

func TestParseCmdReportsParagraphCount(t *testing.T) {
	out, err := runCmd(t, "first\n\nsecond\n", "parse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "2 paragraph(s) parsed") {
		t.Fatalf("expected a paragraph count, got %q", out)
	}
}

func TestParseCmdWithDocFlagPrintsTree(t *testing.T) {
	out, err := runCmd(t, ".bf{strong}\n", "parse", "--doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "command .bf") {
		t.Fatalf("expected the lowered tree in output, got %q", out)
	}
}

func TestLintCmdReportsProblems(t *testing.T) {
	out, err := runCmd(t, "*oops*\n", "lint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "emph-delimiters") {
		t.Fatalf("expected emph-delimiters in output, got %q", out)
	}
}

func TestLintCmdCleanInput(t *testing.T) {
	out, err := runCmd(t, "hello world\n", "lint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "no problems found") {
		t.Fatalf("expected a clean bill of health, got %q", out)
	}
}

func TestExplainCmdKnownCode(t *testing.T) {
	out, err := runCmd(t, "", "explain", "E003")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "delimiter") {
		t.Fatalf("expected an explanation mentioning delimiters, got %q", out)
	}
}

func TestExplainCmdUnknownCode(t *testing.T) {
	_, err := runCmd(t, "", "explain", "E999")
	if err == nil {
		t.Fatalf("expected an error for an unknown code")
	}
}
