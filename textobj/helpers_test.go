package textobj

import (
	"testing"

	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

func ctxFor(text string) Context {
	return NewContext(buffer.NewSnapshot(text), nil)
}

func cursorAt(line, col int) cursor.Selection {
	return cursor.At(buffer.Point{Line: line, Column: col})
}

// selText returns the text covered by a selection, both endpoints
// inclusive.
func selText(t *testing.T, ctx Context, sel cursor.Selection) string {
	t.Helper()
	snap := ctx.Buffer
	start := snap.OffsetOf(sel.Min())
	_, size := snap.RuneAt(sel.Max())
	return snap.TextRange(start, snap.OffsetOf(sel.Max())+size)
}

func wantSel(t *testing.T, ctx Context, sel cursor.Selection, ok bool, want string) {
	t.Helper()
	if !ok {
		t.Fatalf("expected selection %q, got none", want)
	}
	if got := selText(t, ctx, sel); got != want {
		t.Errorf("selected %q, want %q", got, want)
	}
}
