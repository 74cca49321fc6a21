package search

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// SplitSelections splits every selection in the list on the matches of re,
// keeping the text fragments between them. With a nonzero capture the
// split happens on that group's span instead of the whole match. Fragments
// keep the direction of the selection they came from and carry no
// captures. It returns ErrInvalidCapture for a group number the pattern
// does not have and ErrNothingSelected when splitting leaves nothing.
func SplitSelections(snap *buffer.Snapshot, list cursor.List, re *Regex, capture int) (cursor.List, error) {
	if capture < 0 || capture > re.GroupCount() {
		return cursor.List{}, ErrInvalidCapture
	}

	ti := newTextIndex(snap.Text())
	bufEnd := len(ti.runes)
	var result []cursor.Selection
	for _, sel := range list.Selections() {
		selBeg, selEnd := iterBounds(snap, ti, sel)
		matches, err := re.matchesIn(ti, selBeg, selEnd)
		if err != nil {
			return cursor.List{}, err
		}

		begin := selBeg
		for _, m := range matches {
			g := m.Groups()[capture]
			if len(g.Captures) == 0 {
				continue
			}
			c := g.Captures[len(g.Captures)-1]
			end := c.Index
			if end == bufEnd {
				continue
			}
			if end != 0 {
				fragEnd := end
				if begin != end {
					fragEnd--
				}
				ns := cursor.New(ti.pointAt(snap, begin), ti.pointAt(snap, fragEnd)).
					KeepDirectionOf(sel)
				result = append(result, ns)
			}
			begin = c.Index + c.Length
		}
		if ti.byteAt(begin) <= snap.OffsetOf(sel.Max()) {
			ns := cursor.New(ti.pointAt(snap, begin), sel.Max()).KeepDirectionOf(sel)
			result = append(result, ns)
		}
	}
	if len(result) == 0 {
		return cursor.List{}, ErrNothingSelected
	}
	return cursor.NewList(result...)
}
