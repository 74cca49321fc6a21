package search

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// SelectAllMatches replaces every selection in the list with the matches
// of re inside it, selecting the given capture group (0 for the whole
// match). Each resulting selection keeps the direction of the selection it
// came from and carries the match's capture texts. It returns
// ErrInvalidCapture for a group number the pattern does not have and
// ErrNothingSelected when no selection contains a match.
func SelectAllMatches(snap *buffer.Snapshot, list cursor.List, re *Regex, capture int) (cursor.List, error) {
	if capture < 0 || capture > re.GroupCount() {
		return cursor.List{}, ErrInvalidCapture
	}

	ti := newTextIndex(snap.Text())
	var result []cursor.Selection
	for _, sel := range list.Selections() {
		selBeg, selEnd := iterBounds(snap, ti, sel)
		matches, err := re.matchesIn(ti, selBeg, selEnd)
		if err != nil {
			return cursor.List{}, err
		}
		for _, m := range matches {
			g := m.Groups()[capture]
			if len(g.Captures) == 0 {
				continue
			}
			c := g.Captures[len(g.Captures)-1]
			begin := c.Index
			if begin == selEnd {
				continue
			}
			head := c.Index + c.Length
			if head != begin {
				head--
			}
			ns := cursor.New(ti.pointAt(snap, begin), ti.pointAt(snap, head)).
				WithCaptures(captureTexts(ti, m)).
				KeepDirectionOf(sel)
			result = append(result, ns)
		}
	}
	if len(result) == 0 {
		return cursor.List{}, ErrNothingSelected
	}
	return cursor.NewList(result...)
}
