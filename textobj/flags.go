package textobj

// ObjectFlags controls which sides of a text object are selected and
// whether its delimiters are included.
type ObjectFlags uint8

const (
	// ToBegin grows the selection from the cursor to the object's start.
	ToBegin ObjectFlags = 1 << iota

	// ToEnd grows the selection from the cursor to the object's end.
	ToEnd

	// Inner excludes the object's delimiting punctuation or whitespace.
	Inner
)

// Whole selects the full object including its delimiters.
const Whole = ToBegin | ToEnd

// Has returns true if all bits of f are set.
func (o ObjectFlags) Has(f ObjectFlags) bool {
	return o&f == f
}

// WordType selects the word classification used by word motions and
// objects.
type WordType uint8

const (
	// Word classifies characters into word, punctuation and blank classes.
	// The word class is letters, digits, underscore and the configured
	// extra word characters.
	Word WordType = iota

	// BigWord classifies only by blank versus non-blank.
	BigWord
)
