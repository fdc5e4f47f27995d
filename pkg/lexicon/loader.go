package lexicon

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPattern selects every YAML file below the filesystem root.
const DefaultPattern = "**/*.{yaml,yml}"

type document struct {
	Words []Entry `yaml:"words"`
}

// Parse decodes a YAML lexicon document:
//
//	words:
//	  - base: Auto
//	    category: NOUN
//	    synonyms: [Kraftfahrzeug, Wagen]
//	    replaceable: true
//	    forms: {plural: Autos}
//
// path is only used in error messages.
func Parse(data []byte, path string) ([]Entry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("lexicon: parse %s: %w", path, err)
	}
	for i, entry := range doc.Words {
		if strings.TrimSpace(entry.Base) == "" {
			return nil, fmt.Errorf("lexicon: %s: word %d has no base form", path, i)
		}
	}
	return doc.Words, nil
}

// Load parses a single YAML document into a new Memory lexicon.
func Load(data []byte, path string) (*Memory, error) {
	entries, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	return NewMemory(entries...)
}

// LoadFS merges every file matching the doublestar patterns into one lexicon.
// With no patterns DefaultPattern is used. A base form declared in two files
// is reported with both file names.
func LoadFS(fsys fs.FS, patterns ...string) (*Memory, error) {
	if fsys == nil {
		return nil, errors.New("lexicon: filesystem is nil")
	}
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}

	seen := make(map[string]struct{})
	var paths []string
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("lexicon: glob %q: %w", pattern, err)
		}
		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			paths = append(paths, match)
		}
	}
	sort.Strings(paths)

	origin := make(map[string]string)
	var entries []Entry
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
		}
		parsed, err := Parse(data, path)
		if err != nil {
			return nil, err
		}
		for _, entry := range parsed {
			base := strings.TrimSpace(entry.Base)
			if first, exists := origin[base]; exists {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicate, base, first, path)
			}
			origin[base] = path
			entries = append(entries, entry)
		}
	}

	return NewMemory(entries...)
}
