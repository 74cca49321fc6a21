package textobj

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// SelectNumber selects the number under the cursor: a maximal digit run,
// optionally a leading minus sign, and outside Inner a decimal point. It
// returns ok=false when the cursor is not on a digit or minus sign. The
// count parameter is accepted for interface uniformity and is not used.
func SelectNumber(ctx Context, sel cursor.Selection, count int, flags ObjectFlags) (cursor.Selection, bool) {
	isNumber := func(r rune) bool {
		return (r >= '0' && r <= '9') ||
			(!flags.Has(Inner) && r == '.')
	}

	snap := ctx.Buffer
	first := snap.IterAt(sel.Head)
	last := first

	if !isNumber(first.Rune()) && first.Rune() != '-' {
		return cursor.Selection{}, false
	}

	if flags.Has(ToBegin) {
		first, _ = buffer.SkipWhileReverse(first, snap.Begin(), isNumber)
		if !isNumber(first.Rune()) && first.Rune() != '-' && !first.Next().AtEnd() {
			first = first.Next()
		}
	}

	if flags.Has(ToEnd) {
		if last.Rune() == '-' {
			last = last.Next()
		}
		last, _ = buffer.SkipWhile(last, snap.End(), isNumber)
		if !last.AtBegin() {
			last = last.Prev()
		}
	}

	if flags.Has(ToEnd) {
		return cursor.New(first.Point(), last.Point()), true
	}
	return cursor.New(last.Point(), first.Point()), true
}

// SelectSentence selects the sentence around the cursor. Sentences end at
// '.', ';', '!' or '?' or at a paragraph break; growing forward without
// Inner also consumes trailing horizontal blanks after the terminator.
// The count parameter is accepted for interface uniformity and is not
// used.
func SelectSentence(ctx Context, sel cursor.Selection, count int, flags ObjectFlags) (cursor.Selection, bool) {
	isEndOfSentence := func(r rune) bool {
		return r == '.' || r == ';' || r == '!' || r == '?'
	}

	snap := ctx.Buffer
	first := snap.IterAt(sel.Head)

	if !flags.Has(ToEnd) && !first.AtBegin() {
		// a cursor in the blanks after a terminator belongs to that sentence
		prevNonBlank := first.Prev()
		prevNonBlank, _ = buffer.SkipWhileReverse(prevNonBlank, snap.Begin(), func(r rune) bool {
			return isHorizontalBlank(r) || isEOL(r)
		})
		if isEndOfSentence(prevNonBlank.Rune()) {
			first = prevNonBlank
		}
	}

	last := first

	if flags.Has(ToBegin) {
		sawNonBlank := false
		for !first.AtBegin() {
			cur := first.Rune()
			prev := first.Prev().Rune()
			if !isHorizontalBlank(cur) {
				sawNonBlank = true
			}
			if isEOL(prev) && isEOL(cur) {
				first = first.Next()
				break
			}
			if isEndOfSentence(prev) {
				if sawNonBlank {
					break
				}
				if flags.Has(ToEnd) {
					last = first.Prev()
				}
			}
			first = first.Prev()
		}
		first, _ = buffer.SkipWhile(first, snap.End(), isHorizontalBlank)
	}
	if flags.Has(ToEnd) {
		for !last.AtEnd() {
			cur := last.Rune()
			if isEndOfSentence(cur) ||
				(isEOL(cur) && (last.Next().AtEnd() || isEOL(last.Next().Rune()))) {
				break
			}
			last = last.Next()
		}
		if !flags.Has(Inner) && !last.AtEnd() {
			last = last.Next()
			last, _ = buffer.SkipWhile(last, snap.End(), isHorizontalBlank)
			last = last.Prev()
		}
	}

	if flags.Has(ToEnd) {
		return cursor.New(first.Point(), last.Point()), true
	}
	return cursor.New(last.Point(), first.Point()), true
}

// SelectParagraph selects the paragraph around the cursor: a maximal run
// of lines without a blank-line separator. Without Inner the separator
// after the paragraph is absorbed. The count parameter is accepted for
// interface uniformity and is not used.
func SelectParagraph(ctx Context, sel cursor.Selection, count int, flags ObjectFlags) (cursor.Selection, bool) {
	snap := ctx.Buffer
	first := snap.IterAt(sel.Head)

	if !flags.Has(ToEnd) && first.Offset() > 1 &&
		first.Prev().Rune() == '\n' && first.Prev().Prev().Rune() == '\n' {
		first = first.Prev()
	} else if flags.Has(ToEnd) &&
		!first.AtBegin() && !first.Next().AtEnd() &&
		first.Prev().Rune() == '\n' && first.Rune() == '\n' {
		first = first.Next()
	}

	last := first

	if flags.Has(ToBegin) && !first.AtBegin() {
		first, _ = buffer.SkipWhileReverse(first, snap.Begin(), isEOL)
		if flags.Has(ToEnd) {
			last = first
		}
		for !first.AtBegin() {
			cur := first.Rune()
			prev := first.Prev().Rune()
			if isEOL(prev) && isEOL(cur) {
				first = first.Next()
				break
			}
			first = first.Prev()
		}
	}
	if flags.Has(ToEnd) {
		if !last.AtEnd() && isEOL(last.Rune()) {
			last = last.Next()
		}
		for !last.AtEnd() {
			if !last.AtBegin() && isEOL(last.Rune()) && isEOL(last.Prev().Rune()) {
				if !flags.Has(Inner) {
					last, _ = buffer.SkipWhile(last, snap.End(), isEOL)
				}
				break
			}
			last = last.Next()
		}
		last = last.Prev()
	}

	if flags.Has(ToEnd) {
		return cursor.New(first.Point(), last.Point()), true
	}
	return cursor.New(last.Point(), first.Point()), true
}

// SelectWhitespaces selects the whitespace run under the cursor:
// horizontal blanks, plus newlines when Inner is not set. It returns
// ok=false when the cursor is not on whitespace. The count parameter is
// accepted for interface uniformity and is not used.
func SelectWhitespaces(ctx Context, sel cursor.Selection, count int, flags ObjectFlags) (cursor.Selection, bool) {
	isWhitespace := func(r rune) bool {
		return r == ' ' || r == '\t' ||
			(!flags.Has(Inner) && r == '\n')
	}

	snap := ctx.Buffer
	first := snap.IterAt(sel.Head)
	last := first

	if !isWhitespace(first.Rune()) {
		return cursor.Selection{}, false
	}

	if flags.Has(ToBegin) {
		first, _ = buffer.SkipWhileReverse(first, snap.Begin(), isWhitespace)
		if !isWhitespace(first.Rune()) {
			first = first.Next()
		}
	}
	if flags.Has(ToEnd) {
		last, _ = buffer.SkipWhile(last, snap.End(), isWhitespace)
		last = last.Prev()
	}

	if flags.Has(ToEnd) {
		return cursor.New(first.Point(), last.Point()), true
	}
	return cursor.New(last.Point(), first.Point()), true
}
