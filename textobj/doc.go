// Package textobj implements the semantic text objects and motions of the
// selection engine: words, lines, sentences, paragraphs, whitespace runs,
// numbers, indentation blocks, argument lists, balanced delimiter pairs,
// and character-find motions.
//
// Every selector is a pure function of (Context, Selection, parameters).
// It never mutates the snapshot and returns either a fresh selection or
// ok=false when the object is not defined at the cursor (for example the
// cursor is not on a word character, or the buffer edge is reached before
// the scan completes). Callers driving multiple selections are expected to
// filter such results rather than abort.
package textobj
