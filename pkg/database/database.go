package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/basedalex/yadro-paice/pkg/config"
)

// Entry is one stemmed word in the JSON index file.
type Entry struct {
	Stem  string   `json:"stem"`
	Rules []string `json:"rules,omitempty"`
}

func indexPath(cfg *config.Config) string {
	return filepath.Join(cfg.DbPath, filepath.Base(cfg.DbFile))
}

func invertedPath(cfg *config.Config) string {
	return filepath.Join(cfg.DbPath, filepath.Base(cfg.IndexFile))
}

// WriteJSON stores the word -> stem index.
func WriteJSON(stems map[string]Entry, cfg *config.Config) error {
	file, err := json.MarshalIndent(stems, "", " ")
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := os.WriteFile(indexPath(cfg), file, 0o644); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

// ReadJSON loads the word -> stem index.
func ReadJSON(cfg *config.Config) (map[string]Entry, error) {
	content, err := os.ReadFile(indexPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	stems := make(map[string]Entry)
	if err := json.Unmarshal(content, &stems); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	return stems, nil
}

// WriteInverted stores the stem -> words index.
func WriteInverted(index map[string][]string, cfg *config.Config) error {
	file, err := json.MarshalIndent(index, "", " ")
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := os.WriteFile(invertedPath(cfg), file, 0o644); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

// ReadInverted loads the stem -> words index.
func ReadInverted(cfg *config.Config) (map[string][]string, error) {
	content, err := os.ReadFile(invertedPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	index := make(map[string][]string)
	if err := json.Unmarshal(content, &index); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	return index, nil
}
