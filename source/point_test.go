package source

import "testing"

func TestNewPoint(t *testing.T) {
	ctx := NewContext()
	p := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent("hi"))
	if p.Index != 0 || p.Line != 1 || p.Col != 1 {
		t.Fatalf("got %+v", p)
	}
}

func TestShiftSingleLine(t *testing.T) {
	ctx := NewContext()
	text := "my name is methos"
	start := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))

	mid := start.Shift("my name is ")
	if mid.Index != 11 || mid.Line != 1 || mid.Col != 12 {
		t.Fatalf("got %+v", mid)
	}

	end := mid.Shift("methos")
	if end.Index != 17 || end.Line != 1 || end.Col != 18 {
		t.Fatalf("got %+v", end)
	}
}

func TestShiftTabs(t *testing.T) {
	ctx := NewContext()
	text := "\thello,\tworld"
	start := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))
	end := start.Shift(text)
	if end.Index != 13 || end.Col != 20 {
		t.Fatalf("got %+v", end)
	}
}

func TestShiftMultiLine(t *testing.T) {
	ctx := NewContext()
	text := "a\nbb\nccc"
	start := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))
	end := start.Shift(text)
	if end.Line != 3 || end.Col != 4 || end.Index != len(text) {
		t.Fatalf("got %+v", end)
	}
}

func TestSplitLinesAllNewlineStyles(t *testing.T) {
	for _, nl := range []string{"\n", "\r", "\r\n"} {
		text := "a" + nl + "b"
		ctx := NewContext()
		start := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))
		end := start.Shift(text)
		if end.Line != 2 || end.Col != 2 {
			t.Fatalf("newline %q: got %+v", nl, end)
		}
	}
}
