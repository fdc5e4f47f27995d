package element

// ListElement is a generic ordered container without named constituents.
// Stages use it for flattened phrases and coordinated material.
type ListElement struct {
	node
	category Category
	children []Element
}

// NewList builds a list element.
func NewList(category Category, children ...Element) *ListElement {
	return &ListElement{
		category: category,
		children: append([]Element(nil), children...),
	}
}

func (l *ListElement) Kind() Kind { return KindList }

func (l *ListElement) Category() Category { return l.category }

func (l *ListElement) Children() []Element {
	return append([]Element(nil), l.children...)
}

func (l *ListElement) Len() int { return len(l.children) }

func (l *ListElement) Child(i int) Element { return l.children[i] }

// SetChild replaces the child at index i.
func (l *ListElement) SetChild(i int, e Element) { l.children[i] = e }

func (l *ListElement) AddChild(children ...Element) {
	l.children = append(l.children, children...)
}

func (l *ListElement) PrintTree(indent string) string { return PrintTree(l, indent) }
