// Package stage defines the contract every realisation pass implements:
// syntax, morphology, orthography and formatting collaborators all plug into
// the realiser through Stage.
package stage

import (
	"context"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
)

// Stage transforms a specification tree. Realise may mutate and return its
// input, return a new tree, or return nil; the realiser feeds whatever comes
// back to the next stage. Initialise runs once before the first Realise.
type Stage interface {
	Name() string
	Initialise(ctx context.Context) error
	Realise(ctx context.Context, e element.Element) (element.Element, error)
	SetLexicon(lex lexicon.Lexicon)
}

// RealiseFunc is the signature wrapped by Func.
type RealiseFunc func(ctx context.Context, e element.Element) (element.Element, error)

type funcStage struct {
	name string
	fn   RealiseFunc
}

// Func adapts a plain function into a lexicon-independent Stage with no
// setup. A nil fn behaves as the identity.
func Func(name string, fn RealiseFunc) Stage {
	return &funcStage{name: name, fn: fn}
}

func (s *funcStage) Name() string { return s.name }

func (s *funcStage) Initialise(context.Context) error { return nil }

func (s *funcStage) Realise(ctx context.Context, e element.Element) (element.Element, error) {
	if s.fn == nil {
		return e, nil
	}
	return s.fn(ctx, e)
}

func (s *funcStage) SetLexicon(lexicon.Lexicon) {}

// Identity returns a stage that hands its input back untouched.
func Identity(name string) Stage {
	return Func(name, nil)
}
