package element

// Element is the capability shared by every node of a specification tree.
// The interface is sealed: only the kinds declared in this package implement
// it.
type Element interface {
	// Kind reports which member of the closed hierarchy the element is.
	Kind() Kind
	// Category reports the structural or lexical category.
	Category() Category
	// Children returns the ordered child elements. The slice is a copy.
	Children() []Element
	// Features exposes the element's feature map.
	Features() *Features
	// Realisation returns the surface string once a stage has set it.
	Realisation() (string, bool)
	// SetRealisation records the surface string.
	SetRealisation(string)
	// PrintTree renders an indented dump; see the package-level PrintTree.
	PrintTree(indent string) string

	isElement()
}

type node struct {
	features    Features
	realisation string
	realised    bool
}

func (n *node) Features() *Features {
	return &n.features
}

func (n *node) Realisation() (string, bool) {
	return n.realisation, n.realised
}

func (n *node) SetRealisation(s string) {
	n.realisation = s
	n.realised = true
}

func (n *node) isElement() {}

func (n *node) clone() node {
	return node{
		features:    n.features.clone(),
		realisation: n.realisation,
		realised:    n.realised,
	}
}

// RealisationOf returns the realisation of e, or the empty string when e is
// nil or unrealised.
func RealisationOf(e Element) string {
	if e == nil {
		return ""
	}
	s, _ := e.Realisation()
	return s
}
