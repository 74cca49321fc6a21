// Package cursor defines the selection value types the engine computes:
// a directed Selection (anchor and head coordinates, optional regex capture
// texts, and a preferred target column) and List, the position-ordered,
// never-empty collection of selections tied to one snapshot.
//
// Selections are immutable values with no identity of their own. Every
// operation in textobj and search builds fresh selections from a snapshot;
// the caller owns persistence of the result.
package cursor
