package orchestrator_test

import (
	"context"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
)

// recordingStage captures its inputs and lexicon bindings. fn, when set,
// decides the output; otherwise the input is returned.
type recordingStage struct {
	name        string
	initialised int
	initErr     error
	err         error
	lexicons    []lexicon.Lexicon
	inputs      []element.Element
	fn          func(element.Element) element.Element
}

func newRecordingStage(name string) *recordingStage {
	return &recordingStage{name: name}
}

func (s *recordingStage) Name() string { return s.name }

func (s *recordingStage) Initialise(context.Context) error {
	s.initialised++
	return s.initErr
}

func (s *recordingStage) Realise(_ context.Context, e element.Element) (element.Element, error) {
	s.inputs = append(s.inputs, e)
	if s.err != nil {
		return nil, s.err
	}
	if s.fn != nil {
		return s.fn(e), nil
	}
	return e, nil
}

func (s *recordingStage) SetLexicon(lex lexicon.Lexicon) {
	s.lexicons = append(s.lexicons, lex)
}

// markerStage appends its name to the "visited" feature of the root so each
// snapshot shows which stages have run.
type markerStage struct {
	name string
}

func (s markerStage) Name() string { return s.name }

func (s markerStage) Initialise(context.Context) error { return nil }

func (s markerStage) SetLexicon(lexicon.Lexicon) {}

func (s markerStage) Realise(_ context.Context, e element.Element) (element.Element, error) {
	if e == nil {
		return nil, nil
	}
	visited, _ := e.Features().Text("visited")
	if visited != "" {
		visited += ","
	}
	e.Features().Set("visited", element.StringValue(visited+s.name))
	return e, nil
}
