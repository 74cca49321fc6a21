package config

import (
	"os"
	"strconv"
)

// Environment variable suffixes recognized by ApplyEnv.
const (
	envTabStop        = "TABSTOP"
	envExtraWordChars = "EXTRA_WORD_CHARS"
)

// ApplyEnv applies environment overrides to the store. The prefix should
// include the trailing underscore (e.g. "TEXTSELECT_"). Unset variables
// leave the store unchanged; an unparsable tab stop is ignored.
func ApplyEnv(s *Store, prefix string) {
	if val, ok := os.LookupEnv(prefix + envTabStop); ok {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			_ = s.SetTabStop(n)
		}
	}
	if val, ok := os.LookupEnv(prefix + envExtraWordChars); ok {
		s.SetExtraWordChars(val)
	}
}
