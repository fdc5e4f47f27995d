package element

// PhraseElement is a phrase-level node (noun phrase, verb phrase, clause, ...)
// whose constituents and grammatical settings are all carried as features.
type PhraseElement struct {
	node
	category Category
}

// NewPhrase builds an empty phrase of the given category.
func NewPhrase(category Category) *PhraseElement {
	return &PhraseElement{category: category}
}

func (p *PhraseElement) Kind() Kind { return KindPhrase }

func (p *PhraseElement) Category() Category { return p.category }

// Children returns every element held by element-valued features, following
// feature order and list order within a feature.
func (p *PhraseElement) Children() []Element {
	var out []Element
	for _, name := range p.features.names {
		v := p.features.values[name]
		if !v.holdsElements() {
			continue
		}
		out = append(out, v.AsElements()...)
	}
	return out
}

// FeatureNames returns the feature names in order.
func (p *PhraseElement) FeatureNames() []string { return p.features.Names() }

// Feature returns the raw value under name.
func (p *PhraseElement) Feature(name string) (Value, bool) { return p.features.Get(name) }

// FeatureAsElementList returns the feature coerced to an element list, empty
// when absent or not element-valued.
func (p *PhraseElement) FeatureAsElementList(name string) []Element {
	return p.features.ElementList(name)
}

// SetFeature stores v under name, overwriting any previous value.
func (p *PhraseElement) SetFeature(name string, v Value) { p.features.Set(name, v) }

// SetElement is shorthand for SetFeature(name, ElementValue(e)).
func (p *PhraseElement) SetElement(name string, e Element) {
	p.features.Set(name, ElementValue(e))
}

func (p *PhraseElement) PrintTree(indent string) string { return PrintTree(p, indent) }
