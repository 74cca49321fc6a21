package textobj

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/textselect/cursor"
)

// matchingPairs lists the symbols SelectMatching recognizes, opener first
// in each pair.
var matchingPairs = []rune{'(', ')', '{', '}', '[', ']', '<', '>'}

// prevRuneStart returns the byte offset of the codepoint ending at off.
func prevRuneStart(text string, off int) int {
	_, size := utf8.DecodeLastRuneInString(text[:off])
	return off - size
}

// findClosing scans [pos, end) for the closing delimiter balancing the
// scan start. One opening occurrence at pos itself is skipped. When
// nestable, opening occurrences between the scan position and each
// candidate raise the nesting level and a closing only terminates once the
// level returns to zero. Returns the byte offset of the closing match
// start.
func findClosing(text string, pos, end int, opening, closing string, initLevel int, nestable bool) (int, bool) {
	level := 0
	if nestable {
		level = initLevel
	}

	if end-pos >= len(opening) && text[pos:pos+len(opening)] == opening {
		pos += len(opening)
	}

	for pos < end {
		i := strings.Index(text[pos:end], closing)
		if i < 0 {
			return 0, false
		}
		closeAt := pos + i
		if nestable {
			level += strings.Count(text[pos:closeAt], opening)
		}
		pos = closeAt + len(closing)
		if level == 0 {
			return closeAt, true
		}
		level--
	}
	return 0, false
}

// findOpening is the reverse of findClosing: it scans (begin, pos]
// backward for the opening delimiter balancing the scan start, counting
// intervening closing occurrences as nesting when nestable. One closing
// occurrence ending at the scan start is skipped. Returns the byte offset
// of the opening match start.
func findOpening(text string, begin, pos int, opening, closing string, initLevel int, nestable bool) (int, bool) {
	level := 0
	if nestable {
		level = initLevel
	}

	hi := pos
	if pos < len(text) {
		_, size := utf8.DecodeRuneInString(text[pos:])
		hi = pos + size
	}
	if hi-begin >= len(closing) && text[hi-len(closing):hi] == closing {
		hi -= len(closing)
	}

	for hi > begin {
		i := strings.LastIndex(text[begin:hi], opening)
		if i < 0 {
			return 0, false
		}
		open := begin + i
		if nestable {
			level += strings.Count(text[open+len(opening):hi], closing)
		}
		hi = open
		if level == 0 {
			return open, true
		}
		level--
	}
	return 0, false
}

// findSurrounding locates the delimiter pair around pos. With ToBegin the
// opening bound is searched backward (unless the cursor already sits on
// the opening); with ToEnd the closing bound is searched forward. Inner
// trims the delimiter text from whichever ends are present. The returned
// offsets are ordered in reading direction when ToEnd is set and reversed
// otherwise, so the caller can build a direction-correct selection.
func findSurrounding(text string, pos int, opening, closing string, flags ObjectFlags, initLevel int) (int, int, bool) {
	toBegin := flags.Has(ToBegin)
	toEnd := flags.Has(ToEnd)
	nestable := opening != closing

	first := pos
	if toBegin && !strings.HasPrefix(text[pos:], opening) {
		open, ok := findOpening(text, 0, pos, opening, closing, initLevel, nestable)
		if !ok {
			return 0, 0, false
		}
		first = open
	}

	last := pos
	closeStart := -1
	if toEnd {
		cs, ok := findClosing(text, pos, len(text), opening, closing, initLevel, nestable)
		if !ok {
			return 0, 0, false
		}
		closeStart = cs
		last = prevRuneStart(text, cs+len(closing))
	}

	if flags.Has(Inner) {
		if toBegin && first != last {
			first += len(opening)
		}
		if toEnd && first != last {
			last = prevRuneStart(text, closeStart)
		}
	}
	if toEnd {
		return first, last, true
	}
	return last, first, true
}

// SelectMatching scans forward along the cursor's line for the nearest
// bracket symbol and selects the span between it and its balanced partner.
// It returns ok=false when no symbol occurs before end of line or no
// partner balances.
func SelectMatching(ctx Context, sel cursor.Selection) (cursor.Selection, bool) {
	snap := ctx.Buffer
	it := snap.IterAt(sel.Head)
	match := -1
	for !isEOL(it.Rune()) {
		r := it.Rune()
		for i, p := range matchingPairs {
			if r == p {
				match = i
				break
			}
		}
		if match >= 0 {
			break
		}
		it = it.Next()
	}
	if match < 0 {
		return cursor.Selection{}, false
	}

	begin := it

	if match%2 == 0 {
		level := 0
		opening := matchingPairs[match]
		closing := matchingPairs[match+1]
		for !it.AtEnd() {
			switch it.Rune() {
			case opening:
				level++
			case closing:
				level--
				if level == 0 {
					return cursor.New(begin.Point(), it.Point()), true
				}
			}
			it = it.Next()
		}
	} else {
		level := 0
		opening := matchingPairs[match-1]
		closing := matchingPairs[match]
		for {
			switch it.Rune() {
			case closing:
				level++
			case opening:
				level--
				if level == 0 {
					return cursor.New(begin.Point(), it.Point()), true
				}
			}
			if it.AtBegin() {
				break
			}
			it = it.Prev()
		}
	}
	return cursor.Selection{}, false
}

// SelectSurrounding selects the text delimited by opening and closing
// around the cursor. Symmetric delimiters and Inner requests go straight
// to the surrounding search. For an asymmetric, non-inner, both-sided
// request whose result equals the input selection, the search is retried
// one nesting level further out, so selecting again grows to the
// enclosing pair.
func SelectSurrounding(ctx Context, sel cursor.Selection, opening, closing string, level int, flags ObjectFlags) (cursor.Selection, bool) {
	snap := ctx.Buffer
	text := snap.Text()
	nestable := opening != closing
	pos := snap.OffsetOf(sel.Head)

	if !nestable || flags.Has(Inner) {
		first, last, ok := findSurrounding(text, pos, opening, closing, flags, level)
		if !ok {
			return cursor.Selection{}, false
		}
		return cursor.New(snap.PointAt(first), snap.PointAt(last)), true
	}

	if (flags == ToBegin && strings.HasPrefix(text[pos:], opening)) ||
		(flags == ToEnd && strings.HasPrefix(text[pos:], closing)) {
		level++
	}

	first, last, ok := findSurrounding(text, pos, opening, closing, flags, level)
	if !ok {
		return cursor.Selection{}, false
	}
	found := cursor.New(snap.PointAt(first), snap.PointAt(last))

	if flags != Whole || found.Min() != sel.Min() || found.Max() != sel.Max() {
		return found, true
	}

	first, last, ok = findSurrounding(text, pos, opening, closing, flags, level+1)
	if !ok {
		return cursor.Selection{}, false
	}
	return cursor.New(snap.PointAt(first), snap.PointAt(last)), true
}
