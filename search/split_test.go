package search

import (
	"errors"
	"sort"
	"testing"

	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

func TestSplitSelections(t *testing.T) {
	snap := buffer.NewSnapshot("a,b,c\n")
	list := cursor.SingleList(cursor.New(buffer.Point{}, buffer.Point{Line: 0, Column: 4}))
	re := mustCompile(t, ",")

	out, err := SplitSelections(snap, list, re, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b", "c"}
	if out.Len() != len(want) {
		t.Fatalf("expected %d fragments, got %d", len(want), out.Len())
	}
	for i, w := range want {
		if got := selText(t, snap, out.At(i)); got != w {
			t.Errorf("fragment %d = %q, want %q", i, got, w)
		}
	}
}

func TestSplitSelectionsSeparatorAtStart(t *testing.T) {
	snap := buffer.NewSnapshot(",a,b\n")
	list := cursor.SingleList(cursor.New(buffer.Point{}, buffer.Point{Line: 0, Column: 3}))
	re := mustCompile(t, ",")

	out, err := SplitSelections(snap, list, re, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"a", "b"}
	if out.Len() != len(want) {
		t.Fatalf("expected %d fragments, got %d", len(want), out.Len())
	}
	for i, w := range want {
		if got := selText(t, snap, out.At(i)); got != w {
			t.Errorf("fragment %d = %q, want %q", i, got, w)
		}
	}
}

func TestSplitSelectionsMultiCharSeparator(t *testing.T) {
	snap := buffer.NewSnapshot("foo -- bar\n")
	list := cursor.SingleList(cursor.New(buffer.Point{}, buffer.Point{Line: 0, Column: 9}))
	re := mustCompile(t, ` *-- *`)

	out, err := SplitSelections(snap, list, re, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 2 {
		t.Fatalf("expected 2 fragments, got %d", out.Len())
	}
	if got := selText(t, snap, out.At(0)); got != "foo" {
		t.Errorf("fragment 0 = %q", got)
	}
	if got := selText(t, snap, out.At(1)); got != "bar" {
		t.Errorf("fragment 1 = %q", got)
	}
}

func TestSplitSelectionsKeepsDirection(t *testing.T) {
	snap := buffer.NewSnapshot("ab,cd\n")
	list := cursor.SingleList(cursor.New(buffer.Point{Line: 0, Column: 4}, buffer.Point{}))
	re := mustCompile(t, ",")

	out, err := SplitSelections(snap, list, re, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < out.Len(); i++ {
		if !out.At(i).IsBackward() {
			t.Errorf("fragment %d should point backward", i)
		}
	}
}

func TestSplitAndMatchesCoverSelection(t *testing.T) {
	// the separators found by SelectAllMatches and the fragments left by
	// SplitSelections tile the selection exactly, no gaps and no overlap
	snap := buffer.NewSnapshot("one two  three\n")
	whole := cursor.New(buffer.Point{}, buffer.Point{Line: 0, Column: 13})
	list := cursor.SingleList(whole)
	re := mustCompile(t, `\s+`)

	frags, err := SplitSelections(snap, list, re, 0)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	seps, err := SelectAllMatches(snap, list, re, 0)
	if err != nil {
		t.Fatalf("matches: %v", err)
	}

	type span struct{ beg, end int }
	var spans []span
	collect := func(l cursor.List) {
		for _, s := range l.Selections() {
			beg := snap.OffsetOf(s.Min())
			_, size := snap.RuneAt(s.Max())
			spans = append(spans, span{beg, snap.OffsetOf(s.Max()) + size})
		}
	}
	collect(frags)
	collect(seps)
	sort.Slice(spans, func(i, j int) bool { return spans[i].beg < spans[j].beg })

	pos := snap.OffsetOf(whole.Min())
	for _, sp := range spans {
		if sp.beg != pos {
			t.Fatalf("coverage jumps from offset %d to %d", pos, sp.beg)
		}
		pos = sp.end
	}
	_, size := snap.RuneAt(whole.Max())
	if end := snap.OffsetOf(whole.Max()) + size; pos != end {
		t.Errorf("coverage stops at offset %d, want %d", pos, end)
	}
}

func TestSplitSelectionsEverythingMatches(t *testing.T) {
	snap := buffer.NewSnapshot("aaa\n")
	list := cursor.SingleList(cursor.New(buffer.Point{}, buffer.Point{Line: 0, Column: 2}))
	re := mustCompile(t, "a+")

	if _, err := SplitSelections(snap, list, re, 0); !errors.Is(err, ErrNothingSelected) {
		t.Errorf("expected ErrNothingSelected, got %v", err)
	}
}

func TestSplitSelectionsInvalidCapture(t *testing.T) {
	snap := buffer.NewSnapshot("a,b\n")
	list := cursor.SingleList(cursor.New(buffer.Point{}, buffer.Point{Line: 0, Column: 2}))
	re := mustCompile(t, ",")

	if _, err := SplitSelections(snap, list, re, 1); !errors.Is(err, ErrInvalidCapture) {
		t.Errorf("expected ErrInvalidCapture, got %v", err)
	}
}
