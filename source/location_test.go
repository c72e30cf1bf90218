package source

import "testing"

func TestLocationMidLine(t *testing.T) {
	ctx := NewContext()
	text := "my name\nis methos"
	start := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))
	end := start.Shift(text)
	loc := NewLocation(start, end)

	if loc.FileName().String() != "f.em" {
		t.Fatalf("file name: %v", loc.FileName())
	}
	if loc.Src().Raw() != text {
		t.Fatalf("src: %v", loc.Src().Raw())
	}
	l0, l1 := loc.Lines()
	if l0 != start.Line || l1 != end.Line {
		t.Fatalf("lines: %d %d", l0, l1)
	}
	c0, c1 := loc.Cols()
	if c0 != start.Col || c1 != end.Col-1 {
		t.Fatalf("cols: %d %d", c0, c1)
	}
}

func TestLocationStartEndRoundTrip(t *testing.T) {
	ctx := NewContext()
	text := "my name is methos\n"
	start := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))
	end := start.Shift(text)
	loc := NewLocation(start, end)

	if loc.Start() != start {
		t.Fatalf("start: got %+v want %+v", loc.Start(), start)
	}
	if loc.End() != end {
		t.Fatalf("end: got %+v want %+v", loc.End(), end)
	}
}

func TestLocationSpanToCommutative(t *testing.T) {
	ctx := NewContext()
	text := "my name is methos\n"
	p1 := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))
	p2 := p1.Shift("my name")
	p3 := p2.Shift(" is ")
	p4 := p2.Shift("methos")

	pairs := [][2]Location{
		{NewLocation(p1, p2), NewLocation(p3, p4)},
		{NewLocation(p1, p3), NewLocation(p2, p4)},
		{NewLocation(p1, p4), NewLocation(p2, p3)},
	}

	for _, pair := range pairs {
		l1, l2 := pair[0], pair[1]
		for _, ordered := range [][2]Location{{l1, l2}, {l2, l1}} {
			span := ordered[0].SpanTo(ordered[1])
			wantStart := min(min(l1.indices[0], l1.indices[1]), min(l2.indices[0], l2.indices[1]))
			wantEnd := max(max(l1.indices[0], l1.indices[1]), max(l2.indices[0], l2.indices[1]))
			gotStart, gotEnd := span.Indices()
			if gotStart != wantStart || gotEnd != wantEnd {
				t.Fatalf("span_to: got (%d,%d) want (%d,%d)", gotStart, gotEnd, wantStart, wantEnd)
			}
		}
	}
}

func TestLocationContextSingleLine(t *testing.T) {
	ctx := NewContext()
	text := "oh! santiana gained a day"
	textStart := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))

	locStart := textStart.Shift("oh! ")
	locEnd := locStart.Shift("santiana")
	loc := NewLocation(locStart, locEnd)

	context := loc.Context()
	if context.Raw() != text {
		t.Fatalf("context: %q", context.Raw())
	}
	s, e := loc.IndicesIn(context)
	if s != 4 || e != 12 {
		t.Fatalf("indices in: %d %d", s, e)
	}
}

func TestLocationContextMultiLine(t *testing.T) {
	lines := []string{
		"oh! santiana gained a day",
		"away santiana!",
		"'napoleon of the west,' they say",
		"along the plains of mexico",
	}
	for _, nl := range []string{"\n", "\r", "\r\n"} {
		text := lines[0] + nl + lines[1] + nl + lines[2] + nl + lines[3]
		ctx := NewContext()
		textStart := NewPoint(ctx.AllocFileName("f.em"), ctx.AllocFileContent(text))

		locStartShift := "oh! santiana gained a day" + nl + "away "
		locText := "santiana!" + nl + "'napoleon of"

		locStart := textStart.Shift(locStartShift)
		locEnd := locStart.Shift(locText)
		loc := NewLocation(locStart, locEnd)

		context := loc.Context()
		want := lines[1] + nl + lines[2]
		if context.Raw() != want {
			t.Fatalf("nl %q: context %q want %q", nl, context.Raw(), want)
		}
	}
}
