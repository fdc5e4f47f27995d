// Package syntax is the default syntax stage. It is language neutral: each
// phrase is linearised into a list of its constituents in feature order, and
// the phrase's scalar features travel with the list for later stages.
package syntax

import (
	"context"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/stage"
)

// Name is the stage name reported by Processor.
const Name = "syntax"

// Processor linearises phrases.
type Processor struct {
	lexicon lexicon.Lexicon
}

var _ stage.Stage = (*Processor)(nil)

// New constructs a Processor.
func New() *Processor {
	return &Processor{}
}

func (p *Processor) Name() string { return Name }

func (p *Processor) Initialise(context.Context) error { return nil }

// SetLexicon binds the lexicon. The default ordering does not consult it.
func (p *Processor) SetLexicon(lex lexicon.Lexicon) { p.lexicon = lex }

// Realise rewrites every PhraseElement below e into a ListElement of the same
// category. Documents and lists are rewritten in place.
func (p *Processor) Realise(ctx context.Context, e element.Element) (element.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.realise(e), nil
}

func (p *Processor) realise(e element.Element) element.Element {
	switch el := e.(type) {
	case nil:
		return nil
	case *element.DocumentElement:
		for i := 0; i < el.Len(); i++ {
			el.SetComponent(i, p.realise(el.Component(i)))
		}
		return el
	case *element.PhraseElement:
		list := element.NewList(el.Category())
		list.Features().CopyFrom(el.Features(), true)
		for _, name := range el.FeatureNames() {
			for _, member := range el.FeatureAsElementList(name) {
				list.AddChild(p.realise(member))
			}
		}
		return list
	case *element.ListElement:
		for i := 0; i < el.Len(); i++ {
			el.SetChild(i, p.realise(el.Child(i)))
		}
		return el
	default:
		return e
	}
}
