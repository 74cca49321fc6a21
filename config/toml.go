package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// tomlSettings mirrors the [editor] table of a settings.toml file.
type tomlSettings struct {
	Editor struct {
		TabStop        int    `toml:"tabstop"`
		ExtraWordChars string `toml:"extra_word_chars"`
	} `toml:"editor"`
}

// ApplyTOML applies settings from TOML data to the store. Options absent
// from the document are left unchanged.
func ApplyTOML(s *Store, data []byte) error {
	var settings tomlSettings
	if err := toml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	if settings.Editor.TabStop != 0 {
		if err := s.SetTabStop(settings.Editor.TabStop); err != nil {
			return err
		}
	}
	if settings.Editor.ExtraWordChars != "" {
		s.SetExtraWordChars(settings.Editor.ExtraWordChars)
	}
	return nil
}

// LoadTOML creates a store from a settings.toml file.
func LoadTOML(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	s := NewStore()
	if err := ApplyTOML(s, data); err != nil {
		return nil, err
	}
	return s, nil
}
