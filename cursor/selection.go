package cursor

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/dshills/textselect/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Target column sentinels. TargetNone marks a selection with no preferred
// column; TargetEOL marks one that tracks the true end of its line even
// after edits change the line length.
const (
	TargetNone = -1
	TargetEOL  = math.MaxInt
)

// Selection represents a directed range of text in a snapshot.
// Anchor is where the selection started; Head is the active cursor end.
// Both coordinates are inclusive codepoint positions.
// Selection is an immutable value type.
type Selection struct {
	Anchor   buffer.Point // where the selection started
	Head     buffer.Point // active end (the cursor)
	Captures []string     // capture texts from the producing regex match, group 0 first
	Target   int          // preferred visual column, TargetNone or TargetEOL
}

// New creates a selection from anchor to head with no target column.
func New(anchor, head buffer.Point) Selection {
	return Selection{Anchor: anchor, Head: head, Target: TargetNone}
}

// At creates a collapsed selection (a bare cursor) at the given point.
func At(p buffer.Point) Selection {
	return Selection{Anchor: p, Head: p, Target: TargetNone}
}

// IsEmpty returns true if the selection covers a single position.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Min returns the lexicographically smaller endpoint.
func (s Selection) Min() buffer.Point {
	return buffer.MinPoint(s.Anchor, s.Head)
}

// Max returns the lexicographically larger endpoint.
func (s Selection) Max() buffer.Point {
	return buffer.MaxPoint(s.Anchor, s.Head)
}

// IsForward returns true if the selection points forward (head >= anchor).
func (s Selection) IsForward() bool {
	return !s.Head.Before(s.Anchor)
}

// IsBackward returns true if the selection points backward (head < anchor).
func (s Selection) IsBackward() bool {
	return s.Head.Before(s.Anchor)
}

// Flip returns a selection with anchor and head swapped. Captures and
// target column are preserved.
func (s Selection) Flip() Selection {
	s.Anchor, s.Head = s.Head, s.Anchor
	return s
}

// KeepDirectionOf returns the selection pointing the same way ref does.
// A collapsed ref counts as forward.
func (s Selection) KeepDirectionOf(ref Selection) Selection {
	if s.IsBackward() != ref.IsBackward() {
		return s.Flip()
	}
	return s
}

// WithCaptures returns the selection carrying the given capture texts.
func (s Selection) WithCaptures(captures []string) Selection {
	s.Captures = captures
	return s
}

// WithTargetEOL returns the selection marked to track its line end.
func (s Selection) WithTargetEOL() Selection {
	s.Target = TargetEOL
	return s
}

// HeadColumn resolves the selection's target column against a snapshot,
// returning the head coordinate adjusted to the preferred column. With
// TargetEOL the head lands on the last character of its line; with
// TargetNone the head is returned unchanged.
func (s Selection) HeadColumn(snap *buffer.Snapshot, tabStop int) buffer.Point {
	switch s.Target {
	case TargetNone:
		return s.Head
	case TargetEOL:
		line := s.Head.Line
		text := snap.Line(line)
		col := len(text) - 1 // the newline
		if col > 0 {
			// land on the last character before the newline
			_, size := utf8.DecodeLastRuneInString(text[:col])
			col -= size
		}
		return buffer.Point{Line: line, Column: col}
	default:
		line := s.Head.Line
		col := buffer.ColumnForWidth(snap.Line(line), s.Target, tabStop)
		return buffer.Point{Line: line, Column: col}
	}
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}

// SameRange returns true if two selections cover the same range,
// regardless of direction.
func (s Selection) SameRange(other Selection) bool {
	return s.Min() == other.Min() && s.Max() == other.Max()
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Head)
}
