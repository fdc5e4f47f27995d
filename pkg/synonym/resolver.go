// Package synonym rewrites a specification tree so that words flagged for
// substitution are replaced by one of their lexicon synonyms.
package synonym

import "github.com/goliatone/go-realiser/pkg/element"

// Option customises a Resolver.
type Option func(*Resolver)

// WithSource injects the random source used to pick synonyms. A nil source
// keeps the default.
func WithSource(src Source) Option {
	return func(r *Resolver) {
		if src != nil {
			r.source = src
		}
	}
}

// Resolver performs synonym substitution over a tree.
type Resolver struct {
	source Source
}

// New constructs a Resolver backed by the process-level source unless
// WithSource is supplied.
func New(options ...Option) *Resolver {
	r := &Resolver{source: DefaultSource()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Resolve walks e depth-first, left to right, and returns the rewritten root.
//
//   - documents: each component is replaced in place by its resolution;
//   - phrases: every feature's element list is resolved and, when non-empty,
//     the feature is overwritten with the first resolved element only;
//   - words: a word flagged for replacement with at least one synonym is
//     replaced by a synonym drawn uniformly at random;
//   - lists: each child is replaced in place by its resolution.
//
// The returned root differs from e only when e itself is a replaced word.
// Lexicon records are never modified.
func (r *Resolver) Resolve(e element.Element) element.Element {
	switch el := e.(type) {
	case nil:
		return nil
	case *element.DocumentElement:
		for i := 0; i < el.Len(); i++ {
			el.SetComponent(i, r.Resolve(el.Component(i)))
		}
		return el
	case *element.PhraseElement:
		for _, name := range el.FeatureNames() {
			members := el.FeatureAsElementList(name)
			for i := range members {
				members[i] = r.Resolve(members[i])
			}
			if len(members) > 0 {
				el.SetFeature(name, element.ElementValue(members[0]))
			}
		}
		return el
	case *element.WordElement:
		synonyms := el.Synonyms()
		if el.ReplaceWithSynonym() && len(synonyms) > 0 {
			return synonyms[r.source.IntN(len(synonyms))]
		}
		return el
	case *element.ListElement:
		for i := 0; i < el.Len(); i++ {
			el.SetChild(i, r.Resolve(el.Child(i)))
		}
		return el
	default:
		return e
	}
}
