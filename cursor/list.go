package cursor

import (
	"errors"
	"sort"
)

// ErrNoSelections indicates an attempt to build an empty selection list.
// Operations that would produce zero selections fail instead of returning
// an empty list.
var ErrNoSelections = errors.New("no selections")

// List is an ordered sequence of selections tied to one snapshot, sorted by
// ascending buffer position. A List produced by any public operation is
// never empty.
type List struct {
	sels []Selection
}

// NewList builds a list from the given selections, sorting them by their
// minimum coordinate. It returns ErrNoSelections when sels is empty.
func NewList(sels ...Selection) (List, error) {
	if len(sels) == 0 {
		return List{}, ErrNoSelections
	}
	out := make([]Selection, len(sels))
	copy(out, sels)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Min().Before(out[j].Min())
	})
	return List{sels: out}, nil
}

// SingleList builds a list holding one selection.
func SingleList(sel Selection) List {
	return List{sels: []Selection{sel}}
}

// Len returns the number of selections.
func (l List) Len() int {
	return len(l.sels)
}

// At returns the selection at index i.
func (l List) At(i int) Selection {
	return l.sels[i]
}

// Selections returns a copy of the underlying selections in order.
func (l List) Selections() []Selection {
	out := make([]Selection, len(l.sels))
	copy(out, l.sels)
	return out
}

// Map returns a new list with fn applied to every selection. Selections for
// which fn reports false are dropped; if none survive, Map returns
// ErrNoSelections and the original list is returned unchanged.
func (l List) Map(fn func(Selection) (Selection, bool)) (List, error) {
	out := make([]Selection, 0, len(l.sels))
	for _, sel := range l.sels {
		if ns, ok := fn(sel); ok {
			out = append(out, ns)
		}
	}
	if len(out) == 0 {
		return l, ErrNoSelections
	}
	return NewList(out...)
}
