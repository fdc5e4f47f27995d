package realiser

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-realiser/pkg/lexicon"
)

//go:embed lexicon/de/*.yaml
var embeddedLexicon embed.FS

// LexiconFS exposes the built-in German lexicon files so callers can merge
// them with their own entries.
//
//	lex, err := lexicon.LoadFS(realiser.LexiconFS())
func LexiconFS() fs.FS {
	sub, err := fs.Sub(embeddedLexicon, "lexicon")
	if err != nil {
		return embeddedLexicon
	}
	return sub
}

// DefaultLexicon loads the built-in lexicon into a fresh store.
func DefaultLexicon() (*lexicon.Memory, error) {
	return lexicon.LoadFS(LexiconFS())
}
