package element

// DocumentElement is a discourse-level node (document, section, paragraph,
// sentence, list, list item) holding components in discourse order.
type DocumentElement struct {
	node
	category   Category
	components []Element
}

// NewDocument builds a document element of the given category.
func NewDocument(category Category, components ...Element) *DocumentElement {
	return &DocumentElement{
		category:   category,
		components: append([]Element(nil), components...),
	}
}

// NewSentence is shorthand for NewDocument(CategorySentence, components...).
func NewSentence(components ...Element) *DocumentElement {
	return NewDocument(CategorySentence, components...)
}

func (d *DocumentElement) Kind() Kind { return KindDocument }

func (d *DocumentElement) Category() Category { return d.category }

func (d *DocumentElement) Children() []Element { return d.Components() }

// Components returns a copy of the component list.
func (d *DocumentElement) Components() []Element {
	return append([]Element(nil), d.components...)
}

// Len returns the number of components.
func (d *DocumentElement) Len() int { return len(d.components) }

// Component returns the component at index i.
func (d *DocumentElement) Component(i int) Element { return d.components[i] }

// SetComponent replaces the component at index i. It panics when i is out of
// range, like a slice index.
func (d *DocumentElement) SetComponent(i int, e Element) {
	d.components[i] = e
}

// AddComponent appends components in order.
func (d *DocumentElement) AddComponent(components ...Element) {
	d.components = append(d.components, components...)
}

// SetComponents replaces the whole component list.
func (d *DocumentElement) SetComponents(components ...Element) {
	d.components = append([]Element(nil), components...)
}

func (d *DocumentElement) PrintTree(indent string) string { return PrintTree(d, indent) }
