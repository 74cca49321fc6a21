package buffer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Snapshot provides a read-only view of buffer text at a specific point in
// time. It will not change even if the buffer it was taken from is modified.
//
// The text always ends with a newline: if the source text does not, one is
// appended at construction. Every line therefore includes its terminating
// newline, and the byte at End().Prev() is always '\n'.
type Snapshot struct {
	text       string
	lineStarts []int // byte offset of the start of each line
}

// NewSnapshot creates a snapshot of the given text.
func NewSnapshot(text string) *Snapshot {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	starts := []int{0}
	for i := 0; i < len(text)-1; i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Snapshot{text: text, lineStarts: starts}
}

// Text returns the full snapshot content, including the trailing newline.
func (s *Snapshot) Text() string {
	return s.text
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() int {
	return len(s.text)
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.lineStarts)
}

// Line returns the text of a line, including its trailing newline.
func (s *Snapshot) Line(line int) string {
	return s.text[s.LineStart(line):s.lineEnd(line)]
}

// LineLen returns the length of a line in bytes, including the newline.
func (s *Snapshot) LineLen(line int) int {
	return s.lineEnd(line) - s.LineStart(line)
}

// LineStart returns the byte offset of the start of a line.
func (s *Snapshot) LineStart(line int) int {
	return s.lineStarts[line]
}

func (s *Snapshot) lineEnd(line int) int {
	if line+1 < len(s.lineStarts) {
		return s.lineStarts[line+1]
	}
	return len(s.text)
}

// OffsetOf converts a point to a byte offset into Text.
func (s *Snapshot) OffsetOf(p Point) int {
	return s.lineStarts[p.Line] + p.Column
}

// PointAt converts a byte offset to a point. An offset equal to Len maps to
// the one-past-the-end sentinel position.
func (s *Snapshot) PointAt(offset int) Point {
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	return Point{Line: line, Column: offset - s.lineStarts[line]}
}

// ByteAt returns the byte at the given point.
func (s *Snapshot) ByteAt(p Point) byte {
	return s.text[s.OffsetOf(p)]
}

// RuneAt returns the rune starting at the given point and its byte size.
func (s *Snapshot) RuneAt(p Point) (rune, int) {
	off := s.OffsetOf(p)
	if off < 0 || off >= len(s.text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.text[off:])
}

// TextBetween returns the text in [from, to), both byte coordinates.
func (s *Snapshot) TextBetween(from, to Point) string {
	return s.text[s.OffsetOf(from):s.OffsetOf(to)]
}

// TextRange returns the text in the byte range [start, end).
func (s *Snapshot) TextRange(start, end int) string {
	return s.text[start:end]
}

// BackCoord returns the coordinate of the last byte in the snapshot, which
// is always the trailing newline sentinel.
func (s *Snapshot) BackCoord() Point {
	return s.PointAt(len(s.text) - 1)
}

// Contains reports whether p addresses an existing byte.
func (s *Snapshot) Contains(p Point) bool {
	if p.Line < 0 || p.Line >= len(s.lineStarts) || p.Column < 0 {
		return false
	}
	return p.Column < s.LineLen(p.Line)
}

// IsEmpty returns true if the snapshot holds only the sentinel newline.
func (s *Snapshot) IsEmpty() bool {
	return s.text == "\n"
}
