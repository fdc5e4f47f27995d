package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/factory"
	"github.com/goliatone/go-realiser/pkg/lexicon"
)

// LoadLexicon reads a YAML lexicon fixture. Testing helpers fail the test on
// error to keep contract tests concise.
func LoadLexicon(t *testing.T, path string) *lexicon.Memory {
	t.Helper()

	lex, err := LoadLexiconFromPath(path)
	if err != nil {
		t.Fatalf("load lexicon: %v", err)
	}
	return lex
}

// LoadLexiconFromPath returns a lexicon without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadLexiconFromPath(path string) (*lexicon.Memory, error) {
	if path == "" {
		return nil, errors.New("testsupport: lexicon path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read lexicon: %w", err)
	}
	return lexicon.Load(data, path)
}

// LoadTree decodes a YAML tree fixture, resolving words through lex when it
// is non-nil.
func LoadTree(t *testing.T, lex lexicon.Lexicon, path string) element.Element {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read tree: %v", err)
	}
	tree, err := factory.New(lex).Decode(data)
	if err != nil {
		t.Fatalf("decode tree %s: %v", path, err)
	}
	return tree
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
