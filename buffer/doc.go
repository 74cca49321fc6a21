// Package buffer provides the read-only text model the selection engine
// operates on: line/column coordinates, an immutable snapshot of buffer
// text, and a bidirectional codepoint iterator with the skip-while scan
// primitives every selector is built from.
//
// A Snapshot is a value frozen at construction time. Coordinates produced
// against one snapshot are only valid for that snapshot; after the
// underlying buffer is edited, callers must take a new snapshot and
// recompute. Snapshots guarantee that the text ends with a newline, so the
// last addressable byte is always an end-of-line sentinel and edge scans
// never read out of bounds.
package buffer
