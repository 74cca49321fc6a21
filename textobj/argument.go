package textobj

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// argClass classifies a codepoint for argument scanning.
type argClass uint8

const (
	argNone argClass = iota
	argOpening
	argClosing
	argDelimiter
)

func classifyArgument(r rune) argClass {
	switch r {
	case '(', '[', '{':
		return argOpening
	case ')', ']', '}':
		return argClosing
	case ',', ';':
		return argDelimiter
	}
	return argNone
}

// SelectArgument selects the argument under the cursor: the span between
// the enclosing brackets or the nearest delimiters, level nesting levels
// out. Without Inner the separating delimiter is taken with the argument;
// with Inner surrounding blanks are trimmed.
func SelectArgument(ctx Context, sel cursor.Selection, level int, flags ObjectFlags) (cursor.Selection, bool) {
	snap := ctx.Buffer
	pos := snap.IterAt(sel.Head)
	switch classifyArgument(pos.Rune()) {
	case argOpening, argDelimiter:
		if !pos.AtBegin() {
			pos = pos.Prev()
		}
	}

	firstArg := false
	begin := pos
	for lev := level; !begin.AtBegin(); begin = begin.Prev() {
		c := classifyArgument(begin.Rune())
		if c == argClosing {
			lev++
		} else if c == argOpening {
			if lev == 0 {
				firstArg = true
				begin = begin.Next()
				break
			}
			lev--
		} else if c == argDelimiter && lev == 0 {
			begin = begin.Next()
			break
		}
	}

	lastArg := false
	end := pos
	for lev := level; !end.AtEnd(); end = end.Next() {
		c := classifyArgument(end.Rune())
		if c == argOpening {
			lev++
		} else if end != pos && c == argClosing {
			if lev == 0 {
				lastArg = true
				end = end.Prev()
				break
			}
			lev--
		} else if c == argDelimiter && lev == 0 {
			// blanks after the delimiter belong to the first argument only
			if firstArg && !flags.Has(Inner) {
				for !end.Next().AtEnd() && isBlank(end.Next().Rune()) {
					end = end.Next()
				}
			}
			break
		}
	}

	if flags.Has(Inner) {
		if !lastArg {
			end = end.Prev()
		}
		begin, _ = buffer.SkipWhile(begin, end, isBlank)
		end, _ = buffer.SkipWhileReverse(end, begin, isBlank)
	} else if !firstArg && lastArg {
		// take the delimiter before the last argument
		begin = begin.Prev()
	}

	if end.AtEnd() {
		end = end.Prev()
	}

	if flags.Has(ToBegin) && !flags.Has(ToEnd) {
		return cursor.New(pos.Point(), begin.Point()), true
	}
	start := pos
	if flags.Has(ToBegin) {
		start = begin
	}
	return cursor.New(start.Point(), end.Point()), true
}
