package textobj

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// SelectLine selects the whole line under the cursor, anchored at column 0
// and tracking the end of line. A cursor on the newline of a non-final
// line selects the following line.
func SelectLine(ctx Context, sel cursor.Selection) (cursor.Selection, bool) {
	snap := ctx.Buffer
	first := snap.IterAt(sel.Head)
	if first.Rune() == '\n' && !first.Next().AtEnd() {
		first = first.Next()
	}

	for !first.AtBegin() && first.Prev().Rune() != '\n' {
		first = first.Prev()
	}

	last := first
	for !last.Next().AtEnd() && last.Rune() != '\n' {
		last = last.Next()
	}
	return cursor.New(first.Point(), last.Point()).WithTargetEOL(), true
}

// SelectToLineEnd selects to the last character of the cursor's line.
// With onlyMove the selection collapses to that point; otherwise it
// extends from the cursor. The cursor never moves backward when it is
// already on the end of line.
func SelectToLineEnd(ctx Context, sel cursor.Selection, onlyMove bool) (cursor.Selection, bool) {
	snap := ctx.Buffer
	begin := sel.Head
	line := begin.Line

	end := snap.IterAt(buffer.Point{Line: line, Column: snap.LineLen(line) - 1})
	lineStart := snap.IterAt(buffer.Point{Line: line, Column: 0})
	if end != lineStart {
		end = end.Prev()
	}
	endPt := end.Point()
	if endPt.Before(begin) {
		endPt = begin
	}
	anchor := begin
	if onlyMove {
		anchor = endPt
	}
	return cursor.New(anchor, endPt).WithTargetEOL(), true
}

// SelectToLineBegin selects to column 0 of the cursor's line. With
// onlyMove the selection collapses to that point.
func SelectToLineBegin(ctx Context, sel cursor.Selection, onlyMove bool) (cursor.Selection, bool) {
	begin := sel.Head
	end := buffer.Point{Line: begin.Line, Column: 0}
	anchor := begin
	if onlyMove {
		anchor = end
	}
	return cursor.New(anchor, end), true
}

// SelectToFirstNonBlank collapses the selection to the first non-blank
// character of the cursor's line, or to the end of line when the line is
// all blanks.
func SelectToFirstNonBlank(ctx Context, sel cursor.Selection) (cursor.Selection, bool) {
	snap := ctx.Buffer
	line := sel.Head.Line
	it := snap.IterAt(buffer.Point{Line: line, Column: 0})
	bound := snap.End()
	if line+1 < snap.LineCount() {
		bound = snap.IterAt(buffer.Point{Line: line + 1, Column: 0})
	}
	it, _ = buffer.SkipWhile(it, bound, isHorizontalBlank)
	return cursor.At(it.Point()), true
}

// SelectLines expands the selection to cover whole lines: the earlier
// endpoint moves to column 0 and the later one to the last column of its
// line. Anchor and cursor keep their roles.
func SelectLines(ctx Context, sel cursor.Selection) (cursor.Selection, bool) {
	snap := ctx.Buffer
	anchor, head := sel.Anchor, sel.Head
	if !anchor.After(head) {
		anchor.Column = 0
		head.Column = snap.LineLen(head.Line) - 1
	} else {
		head.Column = 0
		anchor.Column = snap.LineLen(anchor.Line) - 1
	}
	return cursor.New(anchor, head).WithTargetEOL(), true
}

// TrimPartialLines shrinks the selection to the whole lines it fully
// covers. It returns ok=false when no full line remains.
func TrimPartialLines(ctx Context, sel cursor.Selection) (cursor.Selection, bool) {
	snap := ctx.Buffer
	anchor, head := sel.Anchor, sel.Head
	swapped := anchor.After(head)
	lo, hi := anchor, head
	if swapped {
		lo, hi = head, anchor
	}

	if lo.Column != 0 {
		lo = buffer.Point{Line: lo.Line + 1, Column: 0}
	}
	if hi.Column != snap.LineLen(hi.Line)-1 {
		if hi.Line == 0 {
			return cursor.Selection{}, false
		}
		hi = buffer.Point{Line: hi.Line - 1, Column: snap.LineLen(hi.Line-1) - 1}
	}

	if lo.After(hi) {
		return cursor.Selection{}, false
	}

	if swapped {
		anchor, head = hi, lo
	} else {
		anchor, head = lo, hi
	}
	return cursor.New(anchor, head).WithTargetEOL(), true
}

// WholeBuffer returns the selection covering the entire snapshot, tracking
// the end of its last line.
func WholeBuffer(ctx Context) cursor.Selection {
	snap := ctx.Buffer
	return cursor.New(buffer.Point{}, snap.BackCoord()).WithTargetEOL()
}
