package textobj

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// SelectToNextWord selects from the cursor to the start of the next word,
// including trailing horizontal blanks. It returns ok=false when the
// cursor is already at the last position of the buffer.
func SelectToNextWord(ctx Context, sel cursor.Selection, wt WordType) (cursor.Selection, bool) {
	extra := ctx.extraWordChars()
	snap := ctx.Buffer
	begin := snap.IterAt(sel.Head)
	if begin.Next().AtEnd() {
		return cursor.Selection{}, false
	}
	// A cursor sitting on a class boundary counts as already on it.
	if categorize(begin.Rune(), wt, extra) != categorize(begin.Next().Rune(), wt, extra) {
		begin = begin.Next()
	}

	begin, found := buffer.SkipWhile(begin, snap.End(), isEOL)
	if !found {
		return cursor.Selection{}, false
	}
	end := begin.Next()

	isWord := func(r rune) bool { return isWordRune(r, wt, extra) }

	if isWord(begin.Rune()) {
		end, _ = buffer.SkipWhile(end, snap.End(), isWord)
	} else if isPunctuation(begin.Rune(), extra) {
		end, _ = buffer.SkipWhile(end, snap.End(), func(r rune) bool { return isPunctuation(r, extra) })
	}

	end, _ = buffer.SkipWhile(end, snap.End(), isHorizontalBlank)

	return cursor.New(begin.Point(), end.Prev().Point()), true
}

// SelectToNextWordEnd selects from the cursor to the end of the current or
// next word.
func SelectToNextWordEnd(ctx Context, sel cursor.Selection, wt WordType) (cursor.Selection, bool) {
	extra := ctx.extraWordChars()
	snap := ctx.Buffer
	begin := snap.IterAt(sel.Head)
	if begin.Next().AtEnd() {
		return cursor.Selection{}, false
	}
	if categorize(begin.Rune(), wt, extra) != categorize(begin.Next().Rune(), wt, extra) {
		begin = begin.Next()
	}

	begin, found := buffer.SkipWhile(begin, snap.End(), isEOL)
	if !found {
		return cursor.Selection{}, false
	}
	end := begin
	end, _ = buffer.SkipWhile(end, snap.End(), isHorizontalBlank)

	isWord := func(r rune) bool { return isWordRune(r, wt, extra) }

	if isWord(end.Rune()) {
		end, _ = buffer.SkipWhile(end, snap.End(), isWord)
	} else if isPunctuation(end.Rune(), extra) {
		end, _ = buffer.SkipWhile(end, snap.End(), func(r rune) bool { return isPunctuation(r, extra) })
	}

	return cursor.New(begin.Point(), end.Prev().Point()), true
}

// SelectToPreviousWord selects from the cursor back to the start of the
// previous word, including leading horizontal blanks. It returns ok=false
// when the cursor is already at the first character.
func SelectToPreviousWord(ctx Context, sel cursor.Selection, wt WordType) (cursor.Selection, bool) {
	extra := ctx.extraWordChars()
	snap := ctx.Buffer
	begin := snap.IterAt(sel.Head)
	if begin.AtBegin() {
		return cursor.Selection{}, false
	}
	if categorize(begin.Rune(), wt, extra) != categorize(begin.Prev().Rune(), wt, extra) {
		begin = begin.Prev()
	}

	begin, _ = buffer.SkipWhileReverse(begin, snap.Begin(), isEOL)
	end := begin

	isWord := func(r rune) bool { return isWordRune(r, wt, extra) }

	end, withEnd := buffer.SkipWhileReverse(end, snap.Begin(), isHorizontalBlank)
	if isWord(end.Rune()) {
		end, withEnd = buffer.SkipWhileReverse(end, snap.Begin(), isWord)
	} else if isPunctuation(end.Rune(), extra) {
		end, withEnd = buffer.SkipWhileReverse(end, snap.Begin(), func(r rune) bool { return isPunctuation(r, extra) })
	}

	if !withEnd {
		end = end.Next()
	}
	return cursor.New(begin.Point(), end.Point()), true
}

// SelectWord selects the word object under the cursor. The cursor must sit
// on a word character. ToBegin and ToEnd grow to the word's start and end;
// ToEnd without Inner also takes trailing horizontal blanks. The count
// parameter is accepted for interface uniformity and is not used.
func SelectWord(ctx Context, sel cursor.Selection, count int, wt WordType, flags ObjectFlags) (cursor.Selection, bool) {
	extra := ctx.extraWordChars()
	snap := ctx.Buffer

	isWord := func(r rune) bool { return isWordRune(r, wt, extra) }

	first := snap.IterAt(sel.Head)
	if !isWord(first.Rune()) {
		return cursor.Selection{}, false
	}

	last := first
	if flags.Has(ToBegin) {
		first, _ = buffer.SkipWhileReverse(first, snap.Begin(), isWord)
		if !isWord(first.Rune()) {
			first = first.Next()
		}
	}
	if flags.Has(ToEnd) {
		last, _ = buffer.SkipWhile(last, snap.End(), isWord)
		if !flags.Has(Inner) {
			last, _ = buffer.SkipWhile(last, snap.End(), isHorizontalBlank)
		}
		last = last.Prev()
	}
	if flags.Has(ToEnd) {
		return cursor.New(first.Point(), last.Point()), true
	}
	return cursor.New(last.Point(), first.Point()), true
}
