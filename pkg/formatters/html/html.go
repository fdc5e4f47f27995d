// Package html formats realised documents as sanitised HTML by rendering
// Markdown through goldmark.
package html

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/formatters/markdown"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/stage"
)

// Name is the registry name of the formatter.
const Name = "html"

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Formatter produces HTML. Markup carried inside lexicon entries is dropped
// by the sanitiser rather than passed through.
type Formatter struct {
	markdown *markdown.Formatter
	engine   goldmark.Markdown
}

var _ stage.Stage = (*Formatter)(nil)

// New constructs a Formatter.
func New() *Formatter {
	return &Formatter{
		markdown: markdown.New(),
		engine:   goldmark.New(),
	}
}

func (f *Formatter) Name() string { return Name }

func (f *Formatter) Initialise(ctx context.Context) error {
	return f.markdown.Initialise(ctx)
}

func (f *Formatter) SetLexicon(lexicon.Lexicon) {}

// Realise formats e as Markdown, converts it and stores the sanitised HTML
// as the root realisation. Nested documents keep their Markdown realisation.
func (f *Formatter) Realise(ctx context.Context, e element.Element) (element.Element, error) {
	out, err := f.markdown.Realise(ctx, e)
	if err != nil || out == nil {
		return out, err
	}

	var buf bytes.Buffer
	if err := f.engine.Convert([]byte(element.RealisationOf(out)), &buf); err != nil {
		return nil, fmt.Errorf("html: convert markdown: %w", err)
	}
	out.SetRealisation(strings.TrimSpace(sanitizer().Sanitize(buf.String())))
	return out, nil
}

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}
