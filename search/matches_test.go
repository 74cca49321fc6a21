package search

import (
	"errors"
	"testing"

	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

func wholeBufferList(snap *buffer.Snapshot) cursor.List {
	return cursor.SingleList(cursor.New(buffer.Point{}, snap.BackCoord()))
}

func TestSelectAllMatches(t *testing.T) {
	snap := buffer.NewSnapshot("a1 b2 c3\n")
	re := mustCompile(t, `[a-z]\d`)

	list, err := SelectAllMatches(snap, wholeBufferList(snap), re, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Len() != 3 {
		t.Fatalf("expected 3 selections, got %d", list.Len())
	}
	want := []string{"a1", "b2", "c3"}
	for i, w := range want {
		if got := selText(t, snap, list.At(i)); got != w {
			t.Errorf("selection %d = %q, want %q", i, got, w)
		}
	}
}

func TestSelectAllMatchesCaptureGroup(t *testing.T) {
	snap := buffer.NewSnapshot("a1 b2 c3\n")
	re := mustCompile(t, `[a-z](\d)`)

	list, err := SelectAllMatches(snap, wholeBufferList(snap), re, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1", "2", "3"}
	if list.Len() != len(want) {
		t.Fatalf("expected %d selections, got %d", len(want), list.Len())
	}
	for i, w := range want {
		if got := selText(t, snap, list.At(i)); got != w {
			t.Errorf("selection %d = %q, want %q", i, got, w)
		}
	}
	// the whole-match text rides along as capture 0
	if caps := list.At(0).Captures; len(caps) != 2 || caps[0] != "a1" || caps[1] != "1" {
		t.Errorf("captures = %v", caps)
	}
}

func TestSelectAllMatchesKeepsDirection(t *testing.T) {
	snap := buffer.NewSnapshot("a1 b2\n")
	re := mustCompile(t, `[a-z]\d`)
	backward := cursor.SingleList(cursor.New(snap.BackCoord(), buffer.Point{}))

	list, err := SelectAllMatches(snap, backward, re, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < list.Len(); i++ {
		if !list.At(i).IsBackward() {
			t.Errorf("selection %d should point backward", i)
		}
	}
}

func TestSelectAllMatchesRespectsSelectionBounds(t *testing.T) {
	snap := buffer.NewSnapshot("a1 b2 c3\n")
	re := mustCompile(t, `[a-z]\d`)
	// only the middle pair is inside the selection
	list := cursor.SingleList(cursor.New(buffer.Point{Line: 0, Column: 3}, buffer.Point{Line: 0, Column: 4}))

	out, err := SelectAllMatches(snap, list, re, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected 1 selection, got %d", out.Len())
	}
	if got := selText(t, snap, out.At(0)); got != "b2" {
		t.Errorf("selected %q", got)
	}
}

func TestSelectAllMatchesInvalidCapture(t *testing.T) {
	snap := buffer.NewSnapshot("abc\n")
	re := mustCompile(t, `(a)`)
	if _, err := SelectAllMatches(snap, wholeBufferList(snap), re, 2); !errors.Is(err, ErrInvalidCapture) {
		t.Errorf("expected ErrInvalidCapture, got %v", err)
	}
	if _, err := SelectAllMatches(snap, wholeBufferList(snap), re, -1); !errors.Is(err, ErrInvalidCapture) {
		t.Errorf("expected ErrInvalidCapture, got %v", err)
	}
}

func TestSelectAllMatchesNothingSelected(t *testing.T) {
	snap := buffer.NewSnapshot("abc\n")
	re := mustCompile(t, "z")
	if _, err := SelectAllMatches(snap, wholeBufferList(snap), re, 0); !errors.Is(err, ErrNothingSelected) {
		t.Errorf("expected ErrNothingSelected, got %v", err)
	}
}
