package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-realiser"
	"github.com/goliatone/go-realiser/internal/config"
	"github.com/goliatone/go-realiser/internal/orthography"
	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/factory"
	"github.com/goliatone/go-realiser/pkg/formatters/html"
	"github.com/goliatone/go-realiser/pkg/formatters/markdown"
	"github.com/goliatone/go-realiser/pkg/formatters/text"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/orchestrator"
	"github.com/goliatone/go-realiser/pkg/stage"
	"github.com/goliatone/go-realiser/pkg/synonym"
	"github.com/goliatone/go-realiser/pkg/trace"
)

// app carries flag values and the collaborators shared by every command.
type app struct {
	configPath string
	lexicon    []string
	formatter  string
	debug      bool
	seed       uint64
	trace      bool
	traceHTML  string
	colour     string

	prompter prompter
}

// session is everything a command needs to realise trees.
type session struct {
	cfg      config.Config
	lexicon  *lexicon.Memory
	factory  *factory.Factory
	realiser *orchestrator.Realiser
	traces   []trace.Trace
}

func (a *app) settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("lexicon") {
		cfg.Lexicon = a.lexicon
	}
	if flags.Changed("formatter") {
		cfg.Formatter = strings.ToLower(strings.TrimSpace(a.formatter))
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
		cfg.Seeded = true
		cfg.BadSeed = ""
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (a *app) open(cmd *cobra.Command) (*session, error) {
	cfg, err := a.settings(cmd)
	if err != nil {
		return nil, err
	}

	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	r, err := newRealiser(cmd.ErrOrStderr(), cfg, lex)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:      cfg,
		lexicon:  lex,
		factory:  factory.New(lex),
		realiser: r,
	}, nil
}

func loadLexicon(patterns []string) (*lexicon.Memory, error) {
	if len(patterns) == 0 {
		return realiser.DefaultLexicon()
	}
	return lexicon.LoadFS(os.DirFS("."), patterns...)
}

// formatters lists every formatter the CLI can select by name.
func formatters() *stage.Registry {
	registry := stage.NewRegistry()
	registry.MustRegister(text.New())
	registry.MustRegister(markdown.New())
	registry.MustRegister(html.New())
	return registry
}

func newRealiser(logs io.Writer, cfg config.Config, lex lexicon.Lexicon) (*orchestrator.Realiser, error) {
	formatter, err := formatters().Get(cfg.Formatter)
	if err != nil {
		return nil, err
	}
	tag, err := cfg.Tag()
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Logger(logs)
	if err != nil {
		return nil, err
	}

	options := []orchestrator.Option{
		orchestrator.WithLexicon(lex),
		orchestrator.WithOrthography(orthography.New(orthography.WithLanguage(tag))),
		orchestrator.WithFormatter(formatter),
		orchestrator.WithDebug(cfg.Debug),
		orchestrator.WithLogger(logger),
	}
	if cfg.Seeded {
		options = append(options, orchestrator.WithResolver(
			synonym.New(synonym.WithSource(synonym.NewSeeded(cfg.Seed))),
		))
	}
	return orchestrator.New(options...), nil
}

func (s *session) decodeFile(path string) (element.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree %s: %w", path, err)
	}
	tree, err := s.factory.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// realise runs one tree, keeping its trace when tracing is requested.
func (s *session) realise(cmd *cobra.Command, a *app, tree element.Element) (element.Element, error) {
	if !a.tracing() {
		return s.realiser.Realise(cmd.Context(), tree)
	}
	out, tr, err := s.realiser.RealiseTraced(cmd.Context(), tree)
	if err != nil {
		return nil, err
	}
	s.traces = append(s.traces, tr)
	return out, nil
}

func (a *app) tracing() bool {
	return a.trace || a.traceHTML != ""
}

// flushTraces writes collected traces to stderr and the HTML file.
func (a *app) flushTraces(cmd *cobra.Command, s *session) error {
	if a.trace {
		colour, err := a.useColour()
		if err != nil {
			return err
		}
		w := cmd.ErrOrStderr()
		for i, tr := range s.traces {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := trace.WriteText(w, tr, colour); err != nil {
				return err
			}
		}
	}

	if a.traceHTML != "" {
		var b strings.Builder
		for _, tr := range s.traces {
			fragment, err := trace.HTML(tr)
			if err != nil {
				return err
			}
			b.WriteString(fragment)
		}
		if err := os.WriteFile(a.traceHTML, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("write trace html: %w", err)
		}
	}
	s.traces = nil
	return nil
}

func (a *app) useColour() (bool, error) {
	switch strings.ToLower(a.colour) {
	case "", "auto":
		return !color.NoColor, nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, errors.New("--color must be auto, on or off")
	}
}

func printRealisation(w io.Writer, e element.Element) {
	if s, ok := realisation(e); ok {
		fmt.Fprintln(w, s)
		return
	}
	fmt.Fprintln(w)
}

func realisation(e element.Element) (string, bool) {
	if e == nil {
		return "", false
	}
	return e.Realisation()
}
