// Package text is the plain-text formatter stage and the realiser default.
package text

import (
	"context"

	"github.com/goliatone/go-realiser/internal/layout"
	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/stage"
)

const (
	// Name is the registry name of the formatter.
	Name = "text"

	// FeatureTitle holds a document or section heading.
	FeatureTitle = layout.FeatureTitle
)

// Formatter lays out paragraphs, lists and sections as plain text:
// paragraphs join sentences with spaces, list items are prefixed with "* ",
// and blocks are separated by blank lines.
type Formatter struct {
	markers layout.Markers
}

var _ stage.Stage = (*Formatter)(nil)

// New constructs a Formatter.
func New() *Formatter {
	return &Formatter{markers: layout.Markers{
		Bullet: "* ",
		Heading: func(_ int, title string) string {
			return title
		},
	}}
}

func (f *Formatter) Name() string { return Name }

func (f *Formatter) Initialise(context.Context) error { return nil }

func (f *Formatter) SetLexicon(lexicon.Lexicon) {}

// Realise sets the realisation of every document in e, including the root.
func (f *Formatter) Realise(ctx context.Context, e element.Element) (element.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	e.SetRealisation(f.markers.Format(e))
	return e, nil
}
