package element

// WordElement is a single lexical item. Records handed out by a lexicon are
// shared between trees, so the tree-facing API never mutates one in place:
// Replaceable and Inflect return copies, and synonym substitution only swaps
// which record a parent references.
type WordElement struct {
	node
	base     string
	category Category
	synonyms []*WordElement
	replace  bool
	forms    map[string]string
}

// WordOption configures a word at construction time.
type WordOption func(*WordElement)

// WithSynonyms sets the synonym references.
func WithSynonyms(synonyms ...*WordElement) WordOption {
	return func(w *WordElement) {
		w.SetSynonyms(synonyms...)
	}
}

// WithReplaceWithSynonym sets the replace-with-synonym flag.
func WithReplaceWithSynonym(replace bool) WordOption {
	return func(w *WordElement) {
		w.replace = replace
	}
}

// WithForms sets the inflected forms table, keyed by inflection name.
func WithForms(forms map[string]string) WordOption {
	return func(w *WordElement) {
		if len(forms) == 0 {
			return
		}
		w.forms = make(map[string]string, len(forms))
		for k, v := range forms {
			w.forms[k] = v
		}
	}
}

// NewWord builds a word record.
func NewWord(base string, category Category, options ...WordOption) *WordElement {
	if category == "" {
		category = CategoryAny
	}
	w := &WordElement{base: base, category: category}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	return w
}

func (w *WordElement) Kind() Kind { return KindWord }

func (w *WordElement) Category() Category { return w.category }

func (w *WordElement) Children() []Element { return nil }

// Base returns the base (citation) form.
func (w *WordElement) Base() string { return w.base }

// Synonyms returns a copy of the synonym references.
func (w *WordElement) Synonyms() []*WordElement {
	return append([]*WordElement(nil), w.synonyms...)
}

// SetSynonyms replaces the synonym references. Lexicons call this while
// linking records; trees should treat records as read-only.
func (w *WordElement) SetSynonyms(synonyms ...*WordElement) {
	out := make([]*WordElement, 0, len(synonyms))
	for _, s := range synonyms {
		if s != nil {
			out = append(out, s)
		}
	}
	w.synonyms = out
}

// ReplaceWithSynonym reports whether the resolver may substitute the word.
func (w *WordElement) ReplaceWithSynonym() bool { return w.replace }

// Form returns the inflected form registered under key.
func (w *WordElement) Form(key string) (string, bool) {
	f, ok := w.forms[key]
	return f, ok
}

// Forms returns a copy of the forms table.
func (w *WordElement) Forms() map[string]string {
	if len(w.forms) == 0 {
		return nil
	}
	out := make(map[string]string, len(w.forms))
	for k, v := range w.forms {
		out[k] = v
	}
	return out
}

// Replaceable returns a usage copy of w with the replace-with-synonym flag
// set. The synonym references are shared with w.
func (w *WordElement) Replaceable() *WordElement {
	c := w.clone()
	c.replace = true
	return c
}

// Inflect returns a copy of w realised as form.
func (w *WordElement) Inflect(form string) *WordElement {
	c := w.clone()
	c.SetRealisation(form)
	return c
}

func (w *WordElement) clone() *WordElement {
	return &WordElement{
		node:     w.node.clone(),
		base:     w.base,
		category: w.category,
		synonyms: append([]*WordElement(nil), w.synonyms...),
		replace:  w.replace,
		forms:    w.forms,
	}
}

func (w *WordElement) PrintTree(indent string) string { return PrintTree(w, indent) }
