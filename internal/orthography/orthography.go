// Package orthography is the default orthography stage: it joins realised
// constituents with single spaces and turns SENTENCE documents into
// capitalised, terminated sentences.
package orthography

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/stage"
)

// Name is the stage name reported by Processor.
const Name = "orthography"

// Option customises a Processor.
type Option func(*Processor)

// WithLanguage selects the casing rules used for sentence-initial
// capitalisation.
func WithLanguage(tag language.Tag) Option {
	return func(p *Processor) {
		p.tag = tag
	}
}

// Processor applies spacing, capitalisation and terminal punctuation.
type Processor struct {
	tag     language.Tag
	title   cases.Caser
	lexicon lexicon.Lexicon
}

var _ stage.Stage = (*Processor)(nil)

// New constructs a Processor for German casing unless WithLanguage is given.
func New(options ...Option) *Processor {
	p := &Processor{tag: language.German}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.title = cases.Title(p.tag, cases.NoLower)
	return p
}

func (p *Processor) Name() string { return Name }

func (p *Processor) Initialise(context.Context) error { return nil }

// SetLexicon binds the lexicon. Orthography does not consult it.
func (p *Processor) SetLexicon(lex lexicon.Lexicon) { p.lexicon = lex }

// Realise sets realisations bottom-up and returns e.
func (p *Processor) Realise(ctx context.Context, e element.Element) (element.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.realise(e)
	return e, nil
}

func (p *Processor) realise(e element.Element) string {
	if e == nil {
		return ""
	}
	if w, ok := e.(*element.WordElement); ok {
		if s, done := w.Realisation(); done {
			return s
		}
		return w.Base()
	}

	parts := make([]string, 0, len(e.Children()))
	for _, child := range e.Children() {
		if s := p.realise(child); s != "" {
			parts = append(parts, s)
		}
	}

	if e.Kind() == element.KindDocument && e.Category() != element.CategorySentence {
		// Layout of discourse-level documents belongs to the formatter.
		return ""
	}

	text := strings.Join(parts, " ")
	if e.Category() == element.CategorySentence {
		text = p.sentence(text)
	}
	e.SetRealisation(text)
	return text
}

func (p *Processor) sentence(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	text = p.title.String(string(r)) + text[size:]

	last, _ := utf8.DecodeLastRuneInString(text)
	switch last {
	case '.', '!', '?', '…':
		return text
	}
	return text + "."
}
