package textobj

import (
	"testing"

	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/config"
)

func TestSelectIndentWhole(t *testing.T) {
	ctx := ctxFor("a\n  b\n  c\nd\n")
	sel, ok := SelectIndent(ctx, cursorAt(1, 2), 0, Whole)
	wantSel(t, ctx, sel, ok, "  b\n  c\n")
}

func TestSelectIndentEmptyLinesJoin(t *testing.T) {
	ctx := ctxFor("  a\n\n  b\nc\n")
	sel, ok := SelectIndent(ctx, cursorAt(0, 2), 0, Whole)
	wantSel(t, ctx, sel, ok, "  a\n\n  b\n")
}

func TestSelectIndentInnerTrimsBlankEdges(t *testing.T) {
	ctx := ctxFor("  a\n  \n\nb\n")
	sel, ok := SelectIndent(ctx, cursorAt(0, 2), 0, Whole)
	wantSel(t, ctx, sel, ok, "  a\n  \n\n")

	sel, ok = SelectIndent(ctx, cursorAt(0, 2), 0, Whole|Inner)
	wantSel(t, ctx, sel, ok, "  a\n")
}

func TestSelectIndentToBeginOnly(t *testing.T) {
	ctx := ctxFor("a\n  b\n  c\nd\n")
	sel, ok := SelectIndent(ctx, cursorAt(2, 2), 0, ToBegin)
	if !ok {
		t.Fatal("expected a selection")
	}
	// the end that did not grow stays on the cursor, pointing backward
	if sel.Anchor != (buffer.Point{Line: 2, Column: 2}) {
		t.Errorf("anchor = %s", sel.Anchor)
	}
	if sel.Head != (buffer.Point{Line: 1, Column: 0}) {
		t.Errorf("head = %s", sel.Head)
	}
}

func TestSelectIndentToEndOnly(t *testing.T) {
	ctx := ctxFor("a\n  b\n  c\nd\n")
	sel, ok := SelectIndent(ctx, cursorAt(1, 2), 0, ToEnd)
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel.Anchor != (buffer.Point{Line: 1, Column: 2}) {
		t.Errorf("anchor = %s", sel.Anchor)
	}
	if sel.Head != (buffer.Point{Line: 2, Column: 3}) {
		t.Errorf("head = %s", sel.Head)
	}
}

func TestSelectIndentInnerTrimsCursorLine(t *testing.T) {
	// a whitespace-only cursor line at the block's edge is trimmed too
	ctx := ctxFor("  a\n  \nb\n")
	sel, ok := SelectIndent(ctx, cursorAt(1, 0), 0, Whole|Inner)
	wantSel(t, ctx, sel, ok, "  a\n")
}

func TestSelectIndentDeeperLinesIncluded(t *testing.T) {
	ctx := ctxFor("x\n  a\n    b\n  c\ny\n")
	sel, ok := SelectIndent(ctx, cursorAt(1, 2), 0, Whole)
	wantSel(t, ctx, sel, ok, "  a\n    b\n  c\n")
}

func TestSelectIndentTabStop(t *testing.T) {
	opts := config.NewStore()
	if err := opts.SetTabStop(4); err != nil {
		t.Fatal(err)
	}
	// a tab indents as far as four spaces
	ctx := NewContext(buffer.NewSnapshot("\ta\n    b\nc\n"), opts)
	sel, ok := SelectIndent(ctx, cursorAt(0, 1), 0, Whole)
	wantSel(t, ctx, sel, ok, "\ta\n    b\n")
}
