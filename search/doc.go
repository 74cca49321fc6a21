// Package search implements regex-driven selection operations: jumping to
// the next or previous match of a pattern with wraparound, replacing a
// selection list with every match inside it, and splitting selections on a
// pattern.
//
// Patterns use the github.com/dlclark/regexp2 dialect and are always
// compiled in multiline mode, so ^ and $ match at line boundaries. Matches
// carry their capture group texts on the resulting selections.
package search
