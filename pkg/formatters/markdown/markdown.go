// Package markdown formats realised documents as Markdown.
package markdown

import (
	"context"
	"strings"

	"github.com/goliatone/go-realiser/internal/layout"
	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/stage"
)

// Name is the registry name of the formatter.
const Name = "markdown"

// Formatter renders titles as ATX headings (one level per nesting depth,
// capped at six) and list items as "- " bullets.
type Formatter struct {
	markers layout.Markers
}

var _ stage.Stage = (*Formatter)(nil)

// New constructs a Formatter.
func New() *Formatter {
	return &Formatter{markers: layout.Markers{
		Bullet:  "- ",
		Heading: heading,
	}}
}

func heading(depth int, title string) string {
	level := depth + 1
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + title
}

func (f *Formatter) Name() string { return Name }

func (f *Formatter) Initialise(context.Context) error { return nil }

func (f *Formatter) SetLexicon(lexicon.Lexicon) {}

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
