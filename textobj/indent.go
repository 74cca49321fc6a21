package textobj

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// lineIndent measures the leading whitespace of a line in display columns,
// expanding tabs to the next tab stop.
func lineIndent(line string, tabStop int) int {
	indent := 0
	for _, r := range line {
		switch r {
		case ' ':
			indent++
		case '\t':
			indent = (indent/tabStop + 1) * tabStop
		default:
			return indent
		}
	}
	return indent
}

// isOnlyWhitespaces reports whether the line holds nothing but blanks.
func isOnlyWhitespaces(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' && r != '\n' {
			return false
		}
	}
	return true
}

// SelectIndent selects the block of lines indented at least as much as the
// cursor's line. Empty lines never interrupt the block; with Inner,
// whitespace-only lines at the block's edges are trimmed. The count
// parameter is accepted for interface uniformity and is not used.
func SelectIndent(ctx Context, sel cursor.Selection, count int, flags ObjectFlags) (cursor.Selection, bool) {
	snap := ctx.Buffer
	tabStop := ctx.tabStop()
	line := sel.Head.Line
	indent := lineIndent(snap.Line(line), tabStop)

	beginLine := line - 1
	if flags.Has(ToBegin) {
		for beginLine >= 0 && (snap.Line(beginLine) == "\n" ||
			lineIndent(snap.Line(beginLine), tabStop) >= indent) {
			beginLine--
		}
	}
	beginLine++

	endLine := line + 1
	if flags.Has(ToEnd) {
		end := snap.LineCount()
		for endLine < end && (snap.Line(endLine) == "\n" ||
			lineIndent(snap.Line(endLine), tabStop) >= indent) {
			endLine++
		}
	}
	endLine--

	if flags.Has(Inner) {
		for beginLine < endLine && isOnlyWhitespaces(snap.Line(beginLine)) {
			beginLine++
		}
		for beginLine < endLine && isOnlyWhitespaces(snap.Line(endLine)) {
			endLine--
		}
	}

	first := sel.Head
	if flags.Has(ToBegin) {
		first = buffer.Point{Line: beginLine, Column: 0}
	}
	last := sel.Head
	if flags.Has(ToEnd) {
		last = buffer.Point{Line: endLine, Column: snap.LineLen(endLine) - 1}
	}
	if flags.Has(ToEnd) {
		return cursor.New(first, last), true
	}
	return cursor.New(last, first), true
}
