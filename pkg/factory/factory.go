// Package factory builds specification trees, either programmatically or
// from YAML tree documents. Words are taken from the bound lexicon so that
// synonym links and forms tables travel with them.
package factory

import (
	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
)

// Standard phrase feature names used by the helpers.
const (
	FeatureSubject    = "subject"
	FeatureVerb       = "verb"
	FeatureObject     = "object"
	FeatureDeterminer = "determiner"
	FeatureHead       = "head"
)

// Field is one named feature of a phrase.
type Field struct {
	Name  string
	Value element.Value
}

// El is a Field holding a single element.
func El(name string, e element.Element) Field {
	return Field{Name: name, Value: element.ElementValue(e)}
}

// Els is a Field holding an ordered element list.
func Els(name string, elements ...element.Element) Field {
	return Field{Name: name, Value: element.ElementsValue(elements...)}
}

// Str is a Field holding a string.
func Str(name, value string) Field {
	return Field{Name: name, Value: element.StringValue(value)}
}

// Factory creates elements against an optional lexicon.
type Factory struct {
	lexicon lexicon.Lexicon
}

// New returns a Factory. lex may be nil, in which case words are created
// fresh with category ANY.
func New(lex lexicon.Lexicon) *Factory {
	return &Factory{lexicon: lex}
}

// Lexicon returns the bound lexicon.
func (f *Factory) Lexicon() lexicon.Lexicon {
	return f.lexicon
}

// Word returns the lexicon record for base. The record is shared; use
// Replaceable for a usage that should be substituted.
func (f *Factory) Word(base string) *element.WordElement {
	if f.lexicon != nil {
		if w := f.lexicon.Word(base); w != nil {
			return w
		}
	}
	return element.NewWord(base, element.CategoryAny)
}

// Replaceable returns a usage copy of the record for base flagged for synonym
// replacement.
func (f *Factory) Replaceable(base string) *element.WordElement {
	return f.Word(base).Replaceable()
}

// Phrase builds a phrase with fields set in order. Fields with an empty name
// or a nil element are skipped.
func (f *Factory) Phrase(category element.Category, fields ...Field) *element.PhraseElement {
	p := element.NewPhrase(category)
	for _, field := range fields {
		if field.Name == "" || field.Value.IsZero() {
			continue
		}
		if e, ok := field.Value.AsElement(); ok && e == nil {
			continue
		}
		p.SetFeature(field.Name, field.Value)
	}
	return p
}

// Clause builds a CLAUSE phrase from subject, verb and object. Any of them may
// be nil.
func (f *Factory) Clause(subject, verb, object element.Element) *element.PhraseElement {
	return f.Phrase(element.CategoryClause,
		El(FeatureSubject, subject),
		El(FeatureVerb, verb),
		El(FeatureObject, object),
	)
}

// NounPhrase builds a NOUN_PHRASE from a determiner and a head.
func (f *Factory) NounPhrase(determiner, head element.Element) *element.PhraseElement {
	return f.Phrase(element.CategoryNounPhrase,
		El(FeatureDeterminer, determiner),
		El(FeatureHead, head),
	)
}

// VerbPhrase builds a VERB_PHRASE around head.
func (f *Factory) VerbPhrase(head element.Element) *element.PhraseElement {
	return f.Phrase(element.CategoryVerbPhrase, El(FeatureHead, head))
}

// Sentence builds a SENTENCE document.
func (f *Factory) Sentence(components ...element.Element) *element.DocumentElement {
	return element.NewSentence(components...)
}

// Document builds a document of the given category.
func (f *Factory) Document(category element.Category, components ...element.Element) *element.DocumentElement {
	return element.NewDocument(category, components...)
}

// List builds a list element of the given category.
func (f *Factory) List(category element.Category, children ...element.Element) *element.ListElement {
	return element.NewList(category, children...)
}
