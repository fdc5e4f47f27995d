package element

// Kind identifies which member of the closed element hierarchy a value is.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindDocument
	KindPhrase
	KindWord
	KindList

	// KindTotal is the number of kinds defined, including KindUnknown.
	KindTotal = int(iota)
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindPhrase:
		return "phrase"
	case KindWord:
		return "word"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}
