// Package realiser turns language-neutral specification trees into text. It
// re-exports the orchestrator with one-shot helpers for callers that do not
// need to manage a Realiser themselves.
package realiser

import (
	"context"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/factory"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/orchestrator"
)

// Realiser aliases the orchestrator so callers can stay on the root import.
type Realiser = orchestrator.Realiser

// Option aliases orchestrator.Option.
type Option = orchestrator.Option

// NewRealiser exposes the orchestrator constructor from the top-level module.
func NewRealiser(options ...Option) *Realiser {
	return orchestrator.New(options...)
}

// RealiseSentence builds a throwaway Realiser and realises e as a sentence.
func RealiseSentence(ctx context.Context, e element.Element, options ...Option) (string, bool, error) {
	return orchestrator.New(options...).RealiseSentence(ctx, e)
}

// RealiseText decodes a YAML tree document against lex, realises it and
// returns the root realisation. Non-document roots are realised as a
// sentence.
func RealiseText(ctx context.Context, lex lexicon.Lexicon, tree []byte, options ...Option) (string, error) {
	root, err := factory.New(lex).Decode(tree)
	if err != nil {
		return "", err
	}

	opts := make([]Option, 0, len(options)+1)
	if lex != nil {
		opts = append(opts, orchestrator.WithLexicon(lex))
	}
	opts = append(opts, options...)

	text, _, err := orchestrator.New(opts...).RealiseSentence(ctx, root)
	return text, err
}
