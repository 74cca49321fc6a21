package textobj

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// SelectTo selects from the cursor forward to the count-th occurrence of
// target. With inclusive the occurrence itself is selected, otherwise the
// selection stops just before it. It returns ok=false when fewer than
// count occurrences follow the cursor.
func SelectTo(ctx Context, sel cursor.Selection, target rune, count int, inclusive bool) (cursor.Selection, bool) {
	snap := ctx.Buffer
	begin := snap.IterAt(sel.Head)
	end := begin
	for {
		end = end.Next()
		var found bool
		end, found = buffer.SkipWhile(end, snap.End(), func(r rune) bool { return r != target })
		if !found {
			return cursor.Selection{}, false
		}
		count--
		if count <= 0 {
			break
		}
	}
	if !inclusive {
		end = end.Prev()
	}
	return cursor.New(begin.Point(), end.Point()), true
}

// SelectToReverse selects from the cursor backward to the count-th
// occurrence of target before it. With inclusive the occurrence itself is
// selected. It returns ok=false when fewer than count occurrences precede
// the cursor.
func SelectToReverse(ctx Context, sel cursor.Selection, target rune, count int, inclusive bool) (cursor.Selection, bool) {
	snap := ctx.Buffer
	begin := snap.IterAt(sel.Head)
	end := begin
	for {
		end = end.Prev()
		var exhausted bool
		end, exhausted = buffer.SkipWhileReverse(end, snap.Begin(), func(r rune) bool { return r != target })
		if exhausted {
			return cursor.Selection{}, false
		}
		count--
		if count <= 0 {
			break
		}
	}
	if !inclusive {
		end = end.Next()
	}
	return cursor.New(begin.Point(), end.Point()), true
}
