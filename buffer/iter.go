package buffer

import "unicode/utf8"

// Iter is a bidirectional codepoint iterator over a snapshot. It is an
// immutable value type: Next and Prev return new iterators. Two iterators
// over the same snapshot compare equal with == when they sit on the same
// position.
//
// Dereferencing the End position is guarded: Rune returns utf8.RuneError
// there. Next clamps at End and Prev clamps at Begin, so algorithms must
// check AtBegin/AtEnd before stepping where the distinction matters.
type Iter struct {
	snap *Snapshot
	off  int
}

// IterAt returns an iterator positioned at the given point.
func (s *Snapshot) IterAt(p Point) Iter {
	return Iter{snap: s, off: s.OffsetOf(p)}
}

// IterAtOffset returns an iterator positioned at the given byte offset.
func (s *Snapshot) IterAtOffset(offset int) Iter {
	return Iter{snap: s, off: offset}
}

// Begin returns an iterator at the first codepoint.
func (s *Snapshot) Begin() Iter {
	return Iter{snap: s, off: 0}
}

// End returns the one-past-the-last-codepoint sentinel iterator.
func (s *Snapshot) End() Iter {
	return Iter{snap: s, off: len(s.text)}
}

// Rune returns the codepoint under the iterator.
func (it Iter) Rune() rune {
	if it.off >= len(it.snap.text) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(it.snap.text[it.off:])
	return r
}

// Next returns an iterator advanced by one codepoint, clamped at End.
func (it Iter) Next() Iter {
	if it.off >= len(it.snap.text) {
		return it
	}
	_, size := utf8.DecodeRuneInString(it.snap.text[it.off:])
	return Iter{snap: it.snap, off: it.off + size}
}

// Prev returns an iterator moved back by one codepoint, clamped at Begin.
func (it Iter) Prev() Iter {
	if it.off <= 0 {
		return it
	}
	_, size := utf8.DecodeLastRuneInString(it.snap.text[:it.off])
	return Iter{snap: it.snap, off: it.off - size}
}

// Offset returns the iterator's byte offset.
func (it Iter) Offset() int {
	return it.off
}

// Point returns the iterator's coordinate.
func (it Iter) Point() Point {
	return it.snap.PointAt(it.off)
}

// AtBegin returns true if the iterator is at the first codepoint.
func (it Iter) AtBegin() bool {
	return it.off == 0
}

// AtEnd returns true if the iterator is at the one-past-the-end sentinel.
func (it Iter) AtEnd() bool {
	return it.off >= len(it.snap.text)
}

// Before returns true if it is positioned before other.
func (it Iter) Before(other Iter) bool {
	return it.off < other.off
}

// SkipWhile advances it forward while pred holds, stopping at bound. The
// boolean result is true when the scan stopped on a non-matching codepoint
// and false when it was exhausted at bound. Callers rely on that
// distinction to tell "object ends mid-buffer" from "object touches the
// buffer edge".
func SkipWhile(it, bound Iter, pred func(rune) bool) (Iter, bool) {
	for it != bound && pred(it.Rune()) {
		it = it.Next()
	}
	return it, it != bound
}

// SkipWhileReverse moves it backward while pred holds, stopping at bound.
// The boolean result is true when the scan was exhausted: it reached bound
// with the codepoint there still matching. It is false when the scan
// stopped on a non-matching codepoint (possibly bound itself).
func SkipWhileReverse(it, bound Iter, pred func(rune) bool) (Iter, bool) {
	for it != bound && pred(it.Rune()) {
		it = it.Prev()
	}
	return it, pred(it.Rune())
}
