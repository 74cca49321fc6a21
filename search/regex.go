package search

import (
	"sort"

	"github.com/dlclark/regexp2"

	"github.com/dshills/textselect/buffer"
)

// Regex is a compiled search pattern usable in both directions. regexp2
// needs the RightToLeft option at compile time for backward scanning, so a
// second engine instance is kept for it.
type Regex struct {
	pattern  string
	forward  *regexp2.Regexp
	backward *regexp2.Regexp
}

// Compile builds a Regex from a regexp2 pattern. Multiline mode is always
// on, matching ^ and $ at line boundaries.
func Compile(pattern string) (*Regex, error) {
	fwd, err := regexp2.Compile(pattern, regexp2.Multiline)
	if err != nil {
		return nil, err
	}
	bwd, err := regexp2.Compile(pattern, regexp2.Multiline|regexp2.RightToLeft)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, forward: fwd, backward: bwd}, nil
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}

// GroupCount returns the number of capture groups, not counting the whole
// match.
func (re *Regex) GroupCount() int {
	return len(re.forward.GetGroupNumbers()) - 1
}

// matchesIn iterates the pattern over the rune window [start, end) of the
// indexed text. The engine input is truncated one rune past the window so
// that end-anchored constructs see the character that actually follows the
// window; matches extending past the window are dropped.
func (re *Regex) matchesIn(ti *textIndex, start, end int) ([]*regexp2.Match, error) {
	limit := end
	if limit < len(ti.runes) {
		limit++
	}
	input := ti.runes[:limit]

	var out []*regexp2.Match
	m, err := re.forward.FindRunesMatchStartingAt(input, start)
	for err == nil && m != nil {
		if m.Index >= end {
			break
		}
		if m.Index+m.Length <= end {
			out = append(out, m)
		}
		m, err = re.forward.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// textIndex maps between the byte offsets the buffer uses and the rune
// indices regexp2 reports.
type textIndex struct {
	runes  []rune
	byteOf []int // byteOf[i] is the byte offset of rune i; one extra entry for the end
}

func newTextIndex(text string) *textIndex {
	ti := &textIndex{
		runes:  make([]rune, 0, len(text)),
		byteOf: make([]int, 0, len(text)+1),
	}
	for off, r := range text {
		ti.runes = append(ti.runes, r)
		ti.byteOf = append(ti.byteOf, off)
	}
	ti.byteOf = append(ti.byteOf, len(text))
	return ti
}

// runeIndex returns the index of the rune starting at the given byte
// offset.
func (ti *textIndex) runeIndex(byteOff int) int {
	return sort.SearchInts(ti.byteOf, byteOff)
}

// byteAt returns the byte offset of rune i.
func (ti *textIndex) byteAt(i int) int {
	return ti.byteOf[i]
}

// pointAt resolves rune index i to a buffer coordinate.
func (ti *textIndex) pointAt(snap *buffer.Snapshot, i int) buffer.Point {
	return snap.PointAt(ti.byteOf[i])
}

// captureTexts extracts the text of every capture group of a match, whole
// match first. Groups that did not participate yield empty strings.
func captureTexts(ti *textIndex, m *regexp2.Match) []string {
	groups := m.Groups()
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, "")
			continue
		}
		c := g.Captures[len(g.Captures)-1]
		out = append(out, string(ti.runes[c.Index:c.Index+c.Length]))
	}
	return out
}
