package explain

import (
	"strings"
	"testing"
)

func TestLookupKnownCode(t *testing.T) {
	text, ok := Lookup("E003")
	if !ok {
		t.Fatalf("expected E003 to be known")
	}
	if !strings.Contains(text, "delimiter") {
		t.Fatalf("expected E003's text to mention delimiters, got %q", text)
	}
}

func TestLookupUnknownCode(t *testing.T) {
	if _, ok := Lookup("E999"); ok {
		t.Fatalf("expected E999 to be unknown")
	}
}

func TestCodesMatchCatalog(t *testing.T) {
	codes := Codes()
	if len(codes) != len(catalog) {
		t.Fatalf("expected %d codes, got %d", len(catalog), len(codes))
	}
	for _, code := range codes {
		if _, ok := Lookup(code); !ok {
			t.Fatalf("Codes() returned %q which Lookup can't find", code)
		}
	}
}

func TestEveryEntryIsPlainASCII(t *testing.T) {
	for _, e := range catalog {
		for _, r := range e.text {
			if r > 127 {
				t.Fatalf("%s: explanation contains non-ASCII rune %q", e.code, r)
			}
		}
	}
}

func TestEveryEntryIsReasonablyLong(t *testing.T) {
	for _, e := range catalog {
		if len(e.text) < 100 || len(e.text) > 1000 {
			t.Fatalf("%s: explanation length %d out of [100,1000]", e.code, len(e.text))
		}
	}
}
