package search

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/cursor"
)

// Direction selects which way FindNextMatch scans.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// findPrev scans backward from startAt, skipping an empty match sitting
// exactly on the start position so that repeated backward searches make
// progress.
func (re *Regex) findPrev(ti *textIndex, startAt int) (*regexp2.Match, error) {
	m, err := re.backward.FindRunesMatchStartingAt(ti.runes, startAt)
	if err != nil || m == nil {
		return m, err
	}
	if m.Length == 0 && m.Index == startAt {
		return re.backward.FindNextMatch(m)
	}
	return m, nil
}

// FindNextMatch finds the match of re nearest to the selection: forward
// the first match after the selection's end, backward the last match
// before its start. The search wraps around the buffer; the returned flag
// reports whether it did. The resulting selection carries the match's
// capture texts and, for a backward search, points backward. It returns
// ErrNoMatches when the pattern matches nowhere.
func FindNextMatch(snap *buffer.Snapshot, sel cursor.Selection, re *Regex, dir Direction) (cursor.Selection, bool, error) {
	ti := newTextIndex(snap.Text())
	wrapped := false
	var m *regexp2.Match
	var err error

	if dir == Forward {
		start := ti.runeIndex(snap.OffsetOf(sel.Max())) + 1
		if start < len(ti.runes) {
			m, err = re.forward.FindRunesMatchStartingAt(ti.runes, start)
		}
		if err == nil && m == nil {
			wrapped = true
			m, err = re.forward.FindRunesMatchStartingAt(ti.runes, 0)
		}
	} else {
		start := ti.runeIndex(snap.OffsetOf(sel.Min()))
		if start > 0 {
			m, err = re.findPrev(ti, start)
		}
		if err == nil && m == nil {
			wrapped = true
			m, err = re.findPrev(ti, len(ti.runes))
		}
	}
	if err != nil {
		return cursor.Selection{}, false, err
	}
	if m == nil || m.Index == len(ti.runes) {
		return cursor.Selection{}, false, fmt.Errorf("%q: %w", re.pattern, ErrNoMatches)
	}

	captures := captureTexts(ti, m)

	beginRune := m.Index
	headRune := m.Index + m.Length
	if m.Length > 0 {
		headRune--
	}
	begin := ti.pointAt(snap, beginRune)
	head := ti.pointAt(snap, headRune)
	if dir == Backward {
		begin, head = head, begin
	}
	return cursor.New(begin, head).WithCaptures(captures), wrapped, nil
}

// iterBounds returns the rune window [start, end) covered by a selection,
// end being one past the selection's last codepoint.
func iterBounds(snap *buffer.Snapshot, ti *textIndex, sel cursor.Selection) (int, int) {
	start := ti.runeIndex(snap.OffsetOf(sel.Min()))
	end := ti.runeIndex(snap.OffsetOf(sel.Max())) + 1
	return start, end
}
