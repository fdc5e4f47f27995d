// Package morphology is the default morphology stage. Words are realised from
// the forms table carried by their lexicon record; no inflection rules are
// synthesised.
package morphology

import (
	"context"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/stage"
)

const (
	// Name is the stage name reported by Processor.
	Name = "morphology"

	// FeatureInflection selects the form key for every word below the
	// element carrying it, e.g. "plural" or "past".
	FeatureInflection = "inflection"
)

// Processor realises words to surface forms.
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

// SetLexicon binds the lexicon consulted when a word record lacks a form.
func (p *Processor) SetLexicon(lex lexicon.Lexicon) { p.lexicon = lex }

// Realise replaces every unrealised word with an inflected copy. Shared
// lexicon records are left untouched.
func (p *Processor) Realise(ctx context.Context, e element.Element) (element.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.realise(e, ""), nil
}

func (p *Processor) realise(e element.Element, inflection string) element.Element {
	if e == nil {
		return nil
	}
	if key, ok := e.Features().Text(FeatureInflection); ok {
		inflection = key
	}

	switch el := e.(type) {
	case *element.DocumentElement:
		for i := 0; i < el.Len(); i++ {
			el.SetComponent(i, p.realise(el.Component(i), inflection))
		}
		return el
	case *element.ListElement:
		for i := 0; i < el.Len(); i++ {
			el.SetChild(i, p.realise(el.Child(i), inflection))
		}
		return el
	case *element.PhraseElement:
		for _, name := range el.FeatureNames() {
			value, _ := el.Feature(name)
			switch value.Kind() {
			case element.ValueElement:
				member, _ := value.AsElement()
				el.SetElement(name, p.realise(member, inflection))
			case element.ValueElements:
				members := value.AsElements()
				for i := range members {
					members[i] = p.realise(members[i], inflection)
				}
				el.SetFeature(name, element.ElementsValue(members...))
			}
		}
		return el
	case *element.WordElement:
		if _, done := el.Realisation(); done {
			return el
		}
		return el.Inflect(p.form(el, inflection))
	default:
		return e
	}
}

func (p *Processor) form(w *element.WordElement, inflection string) string {
	if inflection == "" {
		return w.Base()
	}
	if f, ok := w.Form(inflection); ok {
		return f
	}
	if p.lexicon != nil {
		if record := p.lexicon.Word(w.Base()); record != nil {
			if f, ok := record.Form(inflection); ok {
				return f
			}
		}
	}
	return w.Base()
}
