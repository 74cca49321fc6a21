package config

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON indicates a settings document that is not valid JSON.
var ErrInvalidJSON = errors.New("invalid settings JSON")

// JSON settings paths, keyed the same way the TOML file is.
const (
	jsonTabStopPath        = "editor.tabstop"
	jsonExtraWordCharsPath = "editor.extra_word_chars"
)

// ApplyJSON applies settings from a JSON document to the store. Options
// absent from the document are left unchanged.
func ApplyJSON(s *Store, data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	if v := gjson.GetBytes(data, jsonTabStopPath); v.Exists() {
		if err := s.SetTabStop(int(v.Int())); err != nil {
			return err
		}
	}
	if v := gjson.GetBytes(data, jsonExtraWordCharsPath); v.Exists() {
		s.SetExtraWordChars(v.String())
	}
	return nil
}
