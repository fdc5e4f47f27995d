package element

// Category tags the structural or grammatical role of an element. Document
// categories govern how components are joined, phrase categories describe the
// constituent type and lexical categories carry a word's part of speech.
type Category string

// Document categories.
const (
	CategoryDocument  Category = "DOCUMENT"
	CategorySection   Category = "SECTION"
	CategoryParagraph Category = "PARAGRAPH"
	CategorySentence  Category = "SENTENCE"
	CategoryList      Category = "LIST"
	CategoryListItem  Category = "LIST_ITEM"
)

// Phrase categories.
const (
	CategoryNounPhrase          Category = "NOUN_PHRASE"
	CategoryVerbPhrase          Category = "VERB_PHRASE"
	CategoryAdjectivePhrase     Category = "ADJECTIVE_PHRASE"
	CategoryAdverbPhrase        Category = "ADVERB_PHRASE"
	CategoryPrepositionalPhrase Category = "PREPOSITIONAL_PHRASE"
	CategoryClause              Category = "CLAUSE"
	CategoryCannedText          Category = "CANNED_TEXT"
)

// Lexical categories.
const (
	CategoryNoun        Category = "NOUN"
	CategoryVerb        Category = "VERB"
	CategoryAdjective   Category = "ADJECTIVE"
	CategoryAdverb      Category = "ADVERB"
	CategoryDeterminer  Category = "DETERMINER"
	CategoryPronoun     Category = "PRONOUN"
	CategoryPreposition Category = "PREPOSITION"
	CategoryConjunction Category = "CONJUNCTION"
	CategoryAny         Category = "ANY"
)

// IsDocument reports whether c is one of the document categories.
func (c Category) IsDocument() bool {
	switch c {
	case CategoryDocument, CategorySection, CategoryParagraph, CategorySentence, CategoryList, CategoryListItem:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
