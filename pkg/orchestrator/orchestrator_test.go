package orchestrator_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
	"github.com/goliatone/go-realiser/pkg/orchestrator"
	"github.com/goliatone/go-realiser/pkg/stage"
	"github.com/goliatone/go-realiser/pkg/synonym"
	"github.com/goliatone/go-realiser/pkg/trace"
)

func markerRealiser(options ...orchestrator.Option) *orchestrator.Realiser {
	base := []orchestrator.Option{
		orchestrator.WithSyntax(markerStage{name: "syntax"}),
		orchestrator.WithMorphology(markerStage{name: "morphology"}),
		orchestrator.WithOrthography(markerStage{name: "orthography"}),
		orchestrator.WithFormatter(markerStage{name: "formatter"}),
	}
	return orchestrator.New(append(base, options...)...)
}

func TestRealiser_DebugTraceOrder(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := markerRealiser(orchestrator.WithDebug(true), orchestrator.WithLogger(logger))

	out, err := r.Realise(context.Background(), element.NewSentence(element.NewWord("Haus", element.CategoryNoun)))
	if err != nil {
		t.Fatalf("realise: %v", err)
	}

	dump, ok := orchestrator.DebugTrace(out)
	if !ok {
		t.Fatalf("expected debug trace on the realised root")
	}

	markers := []string{
		trace.LabelInitial,
		trace.LabelSyntax,
		`visited="syntax"`,
		trace.LabelMorphology,
		`visited="syntax,morphology"`,
		trace.LabelOrthography,
		`visited="syntax,morphology,orthography"`,
		trace.LabelFormatter,
		`visited="syntax,morphology,orthography,formatter"`,
	}
	position := 0
	for _, marker := range markers {
		idx := strings.Index(dump[position:], marker)
		if idx < 0 {
			t.Fatalf("marker %q missing or out of order in trace:\n%s", marker, dump)
		}
		position += idx + len(marker)
	}

	if got := strings.Count(logs.String(), "realiser: tree snapshot"); got != 5 {
		t.Fatalf("expected 5 diagnostic snapshots, got %d:\n%s", got, logs.String())
	}
}

func TestRealiser_DebugOffHasNoTrace(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := markerRealiser(orchestrator.WithLogger(logger))

	out, err := r.Realise(context.Background(), element.NewSentence())
	if err != nil {
		t.Fatalf("realise: %v", err)
	}
	if out.Features().Has(orchestrator.FeatureDebug) {
		t.Fatalf("debug feature present with debug mode off")
	}
	if logs.Len() != 0 {
		t.Fatalf("unexpected diagnostic output: %s", logs.String())
	}
}

func TestRealiser_RealiseTracedWithoutDebug(t *testing.T) {
	r := markerRealiser()
	out, tr, err := r.RealiseTraced(context.Background(), element.NewSentence())
	if err != nil {
		t.Fatalf("realise traced: %v", err)
	}
	want := []string{
		trace.LabelInitial,
		trace.LabelSyntax,
		trace.LabelMorphology,
		trace.LabelOrthography,
		trace.LabelFormatter,
	}
	if diff := cmp.Diff(want, tr.Stages()); diff != "" {
		t.Fatalf("stages mismatch (-want +got):\n%s", diff)
	}
	if _, ok := orchestrator.DebugTrace(out); ok {
		t.Fatalf("trace must not be attached when debug mode is off")
	}
}

func TestRealiser_SetDebugModeAppliesToLaterCalls(t *testing.T) {
	r := markerRealiser()
	if r.DebugMode() {
		t.Fatalf("debug mode should default to off")
	}
	r.SetDebugMode(true)
	out, err := r.Realise(context.Background(), element.NewSentence())
	if err != nil {
		t.Fatalf("realise: %v", err)
	}
	if _, ok := orchestrator.DebugTrace(out); !ok {
		t.Fatalf("expected trace after enabling debug mode")
	}
}

func TestRealiser_EagerInitialisation(t *testing.T) {
	stages := []*recordingStage{
		newRecordingStage("syntax"),
		newRecordingStage("morphology"),
		newRecordingStage("orthography"),
		newRecordingStage("formatter"),
	}
	orchestrator.New(
		orchestrator.WithSyntax(stages[0]),
		orchestrator.WithMorphology(stages[1]),
		orchestrator.WithOrthography(stages[2]),
		orchestrator.WithFormatter(stages[3]),
	)
	for _, s := range stages {
		if s.initialised != 1 {
			t.Fatalf("stage %s initialised %d times", s.name, s.initialised)
		}
	}
}

func TestRealiser_InitialiseErrorSurfaces(t *testing.T) {
	failing := newRecordingStage("morphology")
	failing.initErr = errors.New("tables missing")
	r := orchestrator.New(orchestrator.WithMorphology(failing))

	_, err := r.Realise(context.Background(), element.NewSentence())
	if err == nil || !strings.Contains(err.Error(), "initialise morphology") {
		t.Fatalf("expected initialise error, got %v", err)
	}
	if !errors.Is(err, failing.initErr) {
		t.Fatalf("error should wrap the stage failure: %v", err)
	}
}

func TestRealiser_StageErrorIsWrapped(t *testing.T) {
	failing := newRecordingStage("orthography")
	failing.err = errors.New("boom")
	formatter := newRecordingStage("formatter")
	r := orchestrator.New(orchestrator.WithOrthography(failing), orchestrator.WithFormatter(formatter))

	_, err := r.Realise(context.Background(), element.NewSentence())
	if !errors.Is(err, failing.err) || !strings.Contains(err.Error(), "orthography stage") {
		t.Fatalf("unexpected error %v", err)
	}
	if len(formatter.inputs) != 0 {
		t.Fatalf("formatter must not run after a failing stage")
	}
}

func TestRealiser_NilPropagates(t *testing.T) {
	syntax := newRecordingStage("syntax")
	syntax.fn = func(element.Element) element.Element { return nil }
	morphology := newRecordingStage("morphology")
	formatter := newRecordingStage("formatter")
	r := orchestrator.New(
		orchestrator.WithSyntax(syntax),
		orchestrator.WithMorphology(morphology),
		orchestrator.WithOrthography(newRecordingStage("orthography")),
		orchestrator.WithFormatter(formatter),
	)

	out, err := r.Realise(context.Background(), element.NewSentence())
	if err != nil {
		t.Fatalf("realise: %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil result")
	}
	if len(morphology.inputs) != 1 || morphology.inputs[0] != nil {
		t.Fatalf("morphology should receive the nil output of syntax")
	}
	if len(formatter.inputs) != 1 {
		t.Fatalf("formatter should still run")
	}
}

func TestRealiser_WithoutFormatterPassesThrough(t *testing.T) {
	orthography := newRecordingStage("orthography")
	orthography.fn = func(e element.Element) element.Element {
		e.SetRealisation("fertig")
		return e
	}
	r := orchestrator.New(
		orchestrator.WithSyntax(stage.Identity("syntax")),
		orchestrator.WithMorphology(stage.Identity("morphology")),
		orchestrator.WithOrthography(orthography),
		orchestrator.WithoutFormatter(),
		orchestrator.WithDebug(true),
	)

	root := element.NewSentence()
	out, tr, err := r.RealiseTraced(context.Background(), root)
	if err != nil {
		t.Fatalf("realise: %v", err)
	}
	if out != element.Element(root) || element.RealisationOf(out) != "fertig" {
		t.Fatalf("expected orthography output to be returned unchanged")
	}
	if len(tr) != 5 {
		t.Fatalf("pass-through formatter should still be traced, got %v", tr.Stages())
	}
}

func TestRealiser_SetFormatter(t *testing.T) {
	r := markerRealiser()
	replacement := newRecordingStage("replacement")
	r.SetFormatter(replacement)

	if _, err := r.Realise(context.Background(), element.NewSentence()); err != nil {
		t.Fatalf("realise: %v", err)
	}
	if len(replacement.inputs) != 1 {
		t.Fatalf("replacement formatter not used")
	}
	if replacement.initialised != 0 {
		t.Fatalf("SetFormatter must not initialise the stage")
	}
}

func TestRealiser_SetLexiconPropagation(t *testing.T) {
	syntax := newRecordingStage("syntax")
	morphology := newRecordingStage("morphology")
	orthography := newRecordingStage("orthography")
	formatter := newRecordingStage("formatter")
	lex, _ := lexicon.NewMemory()

	r := orchestrator.New(
		orchestrator.WithSyntax(syntax),
		orchestrator.WithMorphology(morphology),
		orchestrator.WithOrthography(orthography),
		orchestrator.WithFormatter(formatter),
		orchestrator.WithLexicon(lex),
	)
	for _, s := range []*recordingStage{syntax, morphology, orthography} {
		if len(s.lexicons) != 1 || s.lexicons[0] != lex {
			t.Fatalf("stage %s did not receive the lexicon", s.name)
		}
	}

	other, _ := lexicon.NewMemory()
	r.SetLexicon(other)
	for _, s := range []*recordingStage{syntax, morphology, orthography} {
		if len(s.lexicons) != 2 || s.lexicons[1] != other {
			t.Fatalf("stage %s did not receive the replacement lexicon", s.name)
		}
	}
	if len(formatter.lexicons) != 0 {
		t.Fatalf("formatter must not receive the lexicon")
	}
	if r.Lexicon() != other {
		t.Fatalf("realiser should remember the lexicon")
	}
}

func TestRealiser_RealiseSentenceWrapsNonDocuments(t *testing.T) {
	// Later stages replace words in place, so the components are captured
	// as the syntax stage sees them.
	var seen []element.Element
	syntax := newRecordingStage("syntax")
	syntax.fn = func(e element.Element) element.Element {
		if doc, ok := e.(*element.DocumentElement); ok {
			seen = doc.Components()
		}
		return e
	}
	r := orchestrator.New(orchestrator.WithSyntax(syntax))

	word := element.NewWord("Haus", element.CategoryNoun)
	got, ok, err := r.RealiseSentence(context.Background(), word)
	if err != nil {
		t.Fatalf("realise sentence: %v", err)
	}
	if !ok || got != "Haus." {
		t.Fatalf("realisation = %q (ok=%v)", got, ok)
	}

	if len(syntax.inputs) != 1 {
		t.Fatalf("expected one syntax call, got %d", len(syntax.inputs))
	}
	doc, isDoc := syntax.inputs[0].(*element.DocumentElement)
	if !isDoc || doc.Category() != element.CategorySentence {
		t.Fatalf("expected synthetic SENTENCE document, got %v", syntax.inputs[0])
	}
	if len(seen) != 1 || seen[0] != element.Element(word) {
		t.Fatalf("synthetic sentence should hold exactly the original element, got %v", seen)
	}
}

func TestRealiser_RealiseSentenceKeepsDocuments(t *testing.T) {
	syntax := newRecordingStage("syntax")
	r := orchestrator.New(orchestrator.WithSyntax(syntax))

	paragraph := element.NewDocument(element.CategoryParagraph,
		element.NewSentence(element.NewWord("eins", element.CategoryAny)),
		element.NewSentence(element.NewWord("zwei", element.CategoryAny)),
	)
	got, ok, err := r.RealiseSentence(context.Background(), paragraph)
	if err != nil {
		t.Fatalf("realise sentence: %v", err)
	}
	if syntax.inputs[0] != element.Element(paragraph) {
		t.Fatalf("documents must not be wrapped")
	}
	if !ok || got != "Eins. Zwei." {
		t.Fatalf("realisation = %q (ok=%v)", got, ok)
	}
}

func TestRealiser_RealiseSentenceNilResult(t *testing.T) {
	formatter := newRecordingStage("formatter")
	formatter.fn = func(element.Element) element.Element { return nil }
	r := orchestrator.New(orchestrator.WithFormatter(formatter))

	got, ok, err := r.RealiseSentence(context.Background(), element.NewWord("Haus", element.CategoryNoun))
	if err != nil {
		t.Fatalf("realise sentence: %v", err)
	}
	if ok || got != "" {
		t.Fatalf("expected no realisation, got %q", got)
	}
}

func TestRealiser_RealiseBatch(t *testing.T) {
	r := orchestrator.New()

	empty, err := r.RealiseBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("realise nil batch: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("nil batch should yield an empty slice, got %#v", empty)
	}

	inputs := []element.Element{
		element.NewSentence(element.NewWord("eins", element.CategoryAny)),
		element.NewSentence(element.NewWord("zwei", element.CategoryAny)),
		element.NewSentence(element.NewWord("drei", element.CategoryAny)),
	}
	out, err := r.RealiseBatch(context.Background(), inputs)
	if err != nil {
		t.Fatalf("realise batch: %v", err)
	}
	var got []string
	for _, e := range out {
		got = append(got, element.RealisationOf(e))
	}
	if diff := cmp.Diff([]string{"Eins.", "Zwei.", "Drei."}, got); diff != "" {
		t.Fatalf("batch mismatch (-want +got):\n%s", diff)
	}
}

func TestRealiser_RealiseBatchKeepsNils(t *testing.T) {
	skip := element.NewSentence()
	formatter := newRecordingStage("formatter")
	formatter.fn = func(e element.Element) element.Element {
		if e == element.Element(skip) {
			return nil
		}
		return e
	}
	r := orchestrator.New(orchestrator.WithFormatter(formatter))

	first := element.NewSentence(element.NewWord("a", element.CategoryAny))
	last := element.NewSentence(element.NewWord("b", element.CategoryAny))
	out, err := r.RealiseBatch(context.Background(), []element.Element{first, skip, last})
	if err != nil {
		t.Fatalf("realise batch: %v", err)
	}
	if len(out) != 3 || out[0] != element.Element(first) || out[1] != nil || out[2] != element.Element(last) {
		t.Fatalf("unexpected batch result %v", out)
	}
}

func TestRealiser_RealiseBatchErrorDropsResults(t *testing.T) {
	bad := element.NewSentence(element.NewWord("kaputt", element.CategoryAny))
	boom := errors.New("boom")
	morphology := stage.Func("morphology", func(_ context.Context, e element.Element) (element.Element, error) {
		if e == element.Element(bad) {
			return nil, boom
		}
		return e, nil
	})
	r := orchestrator.New(orchestrator.WithMorphology(morphology))

	good := element.NewSentence(element.NewWord("gut", element.CategoryAny))
	out, err := r.RealiseBatch(context.Background(), []element.Element{good, bad, good})
	if !errors.Is(err, boom) {
		t.Fatalf("expected stage error, got %v", err)
	}
	if !strings.Contains(err.Error(), "batch element 1") {
		t.Fatalf("error should name the failing index, got %v", err)
	}
	if out != nil {
		t.Fatalf("failed batch should return no results, got %v", out)
	}
}

func TestRealiser_RequiresContext(t *testing.T) {
	r := orchestrator.New()
	//nolint:staticcheck // exercising the nil guard
	if _, err := r.Realise(nil, element.NewSentence()); err == nil {
		t.Fatalf("expected error for nil context")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Realise(ctx, element.NewSentence()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func defaultClause(lex *lexicon.Memory, head *element.WordElement) *element.PhraseElement {
	np := element.NewPhrase(element.CategoryNounPhrase)
	np.SetElement("determiner", lex.Word("das"))
	np.SetElement("head", head)

	vp := element.NewPhrase(element.CategoryVerbPhrase)
	vp.SetElement("head", lex.Word("fahren"))

	clause := element.NewPhrase(element.CategoryClause)
	clause.SetElement("subject", np)
	clause.SetElement("verb", vp)
	return clause
}

func TestRealiser_DefaultPipeline(t *testing.T) {
	lex, err := lexicon.NewMemory(
		lexicon.Entry{Base: "Auto", Category: element.CategoryNoun, Forms: map[string]string{"plural": "Autos"}},
		lexicon.Entry{Base: "Kraftfahrzeug", Category: element.CategoryNoun},
		lexicon.Entry{Base: "das", Category: element.CategoryDeterminer, Forms: map[string]string{"plural": "die"}},
		lexicon.Entry{Base: "fahren", Category: element.CategoryVerb},
	)
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	auto := lex.Link("Auto", "Kraftfahrzeug")

	r := orchestrator.New(
		orchestrator.WithLexicon(lex),
		orchestrator.WithResolver(synonym.New(synonym.WithSource(synonym.NewSeeded(3)))),
	)
	ctx := context.Background()

	got, ok, err := r.RealiseSentence(ctx, defaultClause(lex, auto))
	if err != nil || !ok {
		t.Fatalf("realise sentence: %v (ok=%v)", err, ok)
	}
	if got != "Das Auto fahren." {
		t.Fatalf("realisation = %q", got)
	}

	got, _, err = r.RealiseSentence(ctx, defaultClause(lex, auto.Replaceable()))
	if err != nil {
		t.Fatalf("realise sentence: %v", err)
	}
	if got != "Das Kraftfahrzeug fahren." {
		t.Fatalf("replaceable head realisation = %q", got)
	}

	plural := defaultClause(lex, auto)
	subject := plural.FeatureAsElementList("subject")[0].(*element.PhraseElement)
	subject.SetFeature("inflection", element.StringValue("plural"))
	got, _, err = r.RealiseSentence(ctx, plural)
	if err != nil {
		t.Fatalf("realise sentence: %v", err)
	}
	if got != "Die Autos fahren." {
		t.Fatalf("plural realisation = %q", got)
	}

	if _, done := auto.Realisation(); done {
		t.Fatalf("pipeline realised the shared lexicon record")
	}
}
