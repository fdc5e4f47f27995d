package morphology_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-realiser/internal/morphology"
	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/lexicon"
)

func TestProcessor_InflectionIsInherited(t *testing.T) {
	auto := element.NewWord("Auto", element.CategoryNoun, element.WithForms(map[string]string{"plural": "Autos"}))
	rot := element.NewWord("rot", element.CategoryAdjective)
	np := element.NewList(element.CategoryNounPhrase, rot, auto)
	np.Features().Set(morphology.FeatureInflection, element.StringValue("plural"))
	root := element.NewSentence(np)

	if _, err := morphology.New().Realise(context.Background(), root); err != nil {
		t.Fatalf("realise: %v", err)
	}

	if got := element.RealisationOf(np.Child(1)); got != "Autos" {
		t.Fatalf("head realisation = %q", got)
	}
	if got := element.RealisationOf(np.Child(0)); got != "rot" {
		t.Fatalf("missing form should fall back to base, got %q", got)
	}
	if _, done := auto.Realisation(); done {
		t.Fatalf("the original word must not be modified")
	}
}

func TestProcessor_FallsBackToLexicon(t *testing.T) {
	lex, err := lexicon.NewMemory(lexicon.Entry{
		Base:     "gehen",
		Category: element.CategoryVerb,
		Forms:    map[string]string{"past": "ging"},
	})
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	p := morphology.New()
	p.SetLexicon(lex)

	usage := element.NewWord("gehen", element.CategoryVerb)
	vp := element.NewPhrase(element.CategoryVerbPhrase)
	vp.SetElement("head", usage)
	vp.SetFeature(morphology.FeatureInflection, element.StringValue("past"))

	if _, err := p.Realise(context.Background(), vp); err != nil {
		t.Fatalf("realise: %v", err)
	}
	head := vp.FeatureAsElementList("head")[0]
	if got := element.RealisationOf(head); got != "ging" {
		t.Fatalf("realisation = %q", got)
	}
}

func TestProcessor_KeepsRealisedWords(t *testing.T) {
	w := element.NewWord("Haus", element.CategoryNoun)
	w.SetRealisation("Häuser")
	list := element.NewList(element.CategoryNounPhrase, w)

	if _, err := morphology.New().Realise(context.Background(), list); err != nil {
		t.Fatalf("realise: %v", err)
	}
	if list.Child(0) != element.Element(w) {
		t.Fatalf("an already realised word should be kept")
	}
}

func TestProcessor_Nil(t *testing.T) {
	out, err := morphology.New().Realise(context.Background(), nil)
	if err != nil || out != nil {
		t.Fatalf("expected nil passthrough, got %v, %v", out, err)
	}
}
