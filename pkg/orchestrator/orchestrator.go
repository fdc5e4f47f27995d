package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/goliatone/go-realiser/internal/morphology"
	"github.com/goliatone/go-realiser/internal/orthography"
	"github.com/goliatone/go-realiser/internal/syntax"
	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/formatters/text"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/stage"
	"github.com/goliatone/go-realiser/pkg/synonym"
	"github.com/goliatone/go-realiser/pkg/trace"
)

// FeatureDebug is the reserved feature key under which the debug trace is
// attached to the realised root.
const FeatureDebug = "debug"

// Option customises the realiser configuration.
type Option func(*Realiser)

// WithSyntax injects a custom syntax stage.
func WithSyntax(s stage.Stage) Option {
	return func(r *Realiser) {
		r.syntax = s
	}
}

// WithMorphology injects a custom morphology stage.
func WithMorphology(s stage.Stage) Option {
	return func(r *Realiser) {
		r.morphology = s
	}
}

// WithOrthography injects a custom orthography stage.
func WithOrthography(s stage.Stage) Option {
	return func(r *Realiser) {
		r.orthography = s
	}
}

// WithFormatter injects the formatter stage. Passing nil behaves like
// WithoutFormatter.
func WithFormatter(s stage.Stage) Option {
	return func(r *Realiser) {
		r.formatter = s
		r.formatterSpecified = true
	}
}

// WithoutFormatter disables the formatter; the orthography output is
// returned as is.
func WithoutFormatter() Option {
	return WithFormatter(nil)
}

// WithLexicon binds a lexicon to the lexicon-aware stages once they are
// initialised.
func WithLexicon(lex lexicon.Lexicon) Option {
	return func(r *Realiser) {
		r.lexicon = lex
	}
}

// WithDebug toggles debug tracing.
func WithDebug(on bool) Option {
	return func(r *Realiser) {
		r.debug = on
	}
}

// WithLogger sets the diagnostic channel debug snapshots are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Realiser) {
		r.logger = logger
	}
}

// WithResolver injects the synonym resolver, typically one built with a
// seeded source.
func WithResolver(resolver *synonym.Resolver) Option {
	return func(r *Realiser) {
		r.resolver = resolver
	}
}

// Realiser runs specification trees through the realisation pipeline. It
// holds mutable stage state and is not safe for concurrent use; give each
// goroutine its own Realiser.
type Realiser struct {
	syntax             stage.Stage
	morphology         stage.Stage
	orthography        stage.Stage
	formatter          stage.Stage
	formatterSpecified bool
	resolver           *synonym.Resolver
	lexicon            lexicon.Lexicon
	debug              bool
	logger             *slog.Logger
	initialiseErr      error
}

// New constructs a Realiser applying any provided options. Missing stages are
// built from the default implementations and every stage is initialised
// immediately; an initialisation failure is reported by each realise call.
func New(options ...Option) *Realiser {
	r := &Realiser{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.applyDefaults()
	return r
}

// Realise runs e through synonym resolution, syntax, morphology,
// orthography and the formatter, feeding each step's output to the next.
// Whatever a stage returns, nil included, is passed on unchecked. In debug
// mode the trace is attached to the result under FeatureDebug.
func (r *Realiser) Realise(ctx context.Context, e element.Element) (element.Element, error) {
	out, _, err := r.realise(ctx, e, r.debug)
	return out, err
}

// RealiseTraced behaves like Realise and also returns the structured trace,
// captured whether or not debug mode is on.
func (r *Realiser) RealiseTraced(ctx context.Context, e element.Element) (element.Element, trace.Trace, error) {
	return r.realise(ctx, e, true)
}

// RealiseSentence realises e as a sentence. Anything other than a document
// is wrapped in a SENTENCE document holding e as its only component. The
// boolean is false when the pipeline produced no realisation.
func (r *Realiser) RealiseSentence(ctx context.Context, e element.Element) (string, bool, error) {
	input := e
	if _, ok := e.(*element.DocumentElement); !ok {
		input = element.NewSentence(e)
	}

	out, err := r.Realise(ctx, input)
	if err != nil {
		return "", false, err
	}
	if out == nil {
		return "", false, nil
	}
	s, ok := out.Realisation()
	return s, ok, nil
}

// RealiseBatch realises each element independently and returns the results
// in input order, nils included. A nil input yields an empty slice. The
// first stage error aborts the batch and no results are returned.
func (r *Realiser) RealiseBatch(ctx context.Context, elements []element.Element) ([]element.Element, error) {
	out := make([]element.Element, 0, len(elements))
	for i, e := range elements {
		realised, err := r.Realise(ctx, e)
		if err != nil {
			return nil, fmt.Errorf("realiser: batch element %d: %w", i, err)
		}
		out = append(out, realised)
	}
	return out, nil
}

// SetLexicon propagates lex to the syntax, morphology and orthography stages.
// The formatter is lexicon independent and is not notified.
func (r *Realiser) SetLexicon(lex lexicon.Lexicon) {
	r.lexicon = lex
	for _, s := range []stage.Stage{r.syntax, r.morphology, r.orthography} {
		if s == nil {
			continue
		}
		s.SetLexicon(lex)
	}
}

// SetFormatter replaces the formatter for subsequent calls. The stage is
// expected to be initialised already; nil disables formatting.
func (r *Realiser) SetFormatter(s stage.Stage) {
	r.formatter = s
	r.formatterSpecified = true
}

// SetDebugMode toggles debug tracing for subsequent calls.
func (r *Realiser) SetDebugMode(on bool) {
	r.debug = on
}

// DebugMode reports whether debug tracing is on.
func (r *Realiser) DebugMode() bool {
	return r.debug
}

// Lexicon returns the bound lexicon, if any.
func (r *Realiser) Lexicon() lexicon.Lexicon {
	return r.lexicon
}

// DebugTrace returns the trace attached to e by a debug-mode realise call.
func DebugTrace(e element.Element) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.Features().Get(FeatureDebug)
	if !ok {
		return "", false
	}
	return v.AsString()
}

type step struct {
	label string
	stage stage.Stage
}

func (r *Realiser) realise(ctx context.Context, e element.Element, capture bool) (element.Element, trace.Trace, error) {
	if ctx == nil {
		return nil, nil, errors.New("realiser: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if err := r.initialiseErr; err != nil {
		return nil, nil, err
	}

	var tr trace.Trace
	current := r.resolver.Resolve(e)
	if capture {
		r.capture(ctx, &tr, trace.LabelInitial, current)
	}

	steps := []step{
		{label: trace.LabelSyntax, stage: r.syntax},
		{label: trace.LabelMorphology, stage: r.morphology},
		{label: trace.LabelOrthography, stage: r.orthography},
		{label: trace.LabelFormatter, stage: r.formatter},
	}
	for _, st := range steps {
		if st.stage != nil {
			next, err := st.stage.Realise(ctx, current)
			if err != nil {
				return nil, tr, fmt.Errorf("realiser: %s stage: %w", st.stage.Name(), err)
			}
			current = next
		}
		if capture {
			r.capture(ctx, &tr, st.label, current)
		}
	}

	if r.debug && current != nil {
		current.Features().Set(FeatureDebug, element.StringValue(tr.String()))
	}
	return current, tr, nil
}

func (r *Realiser) capture(ctx context.Context, tr *trace.Trace, label string, e element.Element) {
	tr.Capture(label, e)
	if !r.debug {
		return
	}
	r.logger.DebugContext(ctx, "realiser: tree snapshot",
		"stage", label,
		"tree", element.PrintTree(e, ""),
	)
}

func (r *Realiser) applyDefaults() {
	if r.syntax == nil {
		r.syntax = syntax.New()
	}
	if r.morphology == nil {
		r.morphology = morphology.New()
	}
	if r.orthography == nil {
		r.orthography = orthography.New()
	}
	if r.formatter == nil && !r.formatterSpecified {
		r.formatter = text.New()
	}
	if r.resolver == nil {
		r.resolver = synonym.New()
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ctx := context.Background()
	for _, s := range []stage.Stage{r.syntax, r.morphology, r.orthography, r.formatter} {
		if s == nil {
			continue
		}
		if err := s.Initialise(ctx); err != nil {
			r.initialiseErr = fmt.Errorf("realiser: initialise %s: %w", s.Name(), err)
			return
		}
	}

	if r.lexicon != nil {
		r.SetLexicon(r.lexicon)
	}
}
