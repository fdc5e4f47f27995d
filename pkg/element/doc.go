// Package element defines the linguistic specification tree the realiser
// operates over. The hierarchy is closed: DocumentElement, PhraseElement,
// WordElement and ListElement are the only kinds, and callers switch over
// them exhaustively instead of extending the set. Phrase-level grammatical
// information lives in an ordered feature map whose values are tagged
// variants (element, element list, string, boolean, enum) so stages can add
// feature names freely without widening the type surface.
package element
