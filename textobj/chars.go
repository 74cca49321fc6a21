package textobj

import "unicode"

// charClass is the coarse classification word motions scan by.
type charClass uint8

const (
	classBlank charClass = iota
	classEOL
	classWord
	classPunctuation
)

// isEOL returns true for the end-of-line character.
func isEOL(r rune) bool {
	return r == '\n'
}

// isHorizontalBlank returns true for spaces, tabs and Unicode space
// separators, but not for end-of-line characters.
func isHorizontalBlank(r rune) bool {
	return r == ' ' || r == '\t' || unicode.Is(unicode.Zs, r)
}

// isBlank returns true for horizontal blanks and end-of-line characters.
func isBlank(r rune) bool {
	return isHorizontalBlank(r) || isEOL(r)
}

// isWordRune returns true if r belongs to the word class for the given
// word type. For Word that is letters, digits, underscore and the extra
// word characters; for BigWord, anything that is not blank.
func isWordRune(r rune, wt WordType, extra []rune) bool {
	if wt == BigWord {
		return !isBlank(r)
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
		return true
	}
	for _, e := range extra {
		if r == e {
			return true
		}
	}
	return false
}

// isPunctuation returns true for characters that are neither word
// characters, blanks nor end-of-line.
func isPunctuation(r rune, extra []rune) bool {
	return !isWordRune(r, Word, extra) && !isBlank(r)
}

// categorize classifies a codepoint for the given word type. BigWord only
// distinguishes blank from non-blank; Word additionally separates
// end-of-line, word and punctuation characters.
func categorize(r rune, wt WordType, extra []rune) charClass {
	if wt == BigWord {
		if isBlank(r) {
			return classBlank
		}
		return classWord
	}
	switch {
	case isEOL(r):
		return classEOL
	case isHorizontalBlank(r):
		return classBlank
	case isWordRune(r, Word, extra):
		return classWord
	default:
		return classPunctuation
	}
}
