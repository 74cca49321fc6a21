package textobj

import (
	"github.com/dshills/textselect/buffer"
	"github.com/dshills/textselect/config"
)

// Context carries the inputs every selector needs: the snapshot to scan
// and the option store. Options may be nil, in which case defaults apply.
type Context struct {
	Buffer  *buffer.Snapshot
	Options *config.Store
}

// NewContext creates a context over a snapshot with the given options.
func NewContext(snap *buffer.Snapshot, opts *config.Store) Context {
	return Context{Buffer: snap, Options: opts}
}

func (c Context) extraWordChars() []rune {
	if c.Options == nil {
		return nil
	}
	return c.Options.ExtraWordChars()
}

func (c Context) tabStop() int {
	if c.Options == nil {
		return config.DefaultTabStop
	}
	return c.Options.TabStop()
}
