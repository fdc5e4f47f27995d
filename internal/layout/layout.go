// Package layout joins realised sentences into paragraphs, lists, sections
// and documents. The text and markdown formatters differ only in the markers
// they configure.
package layout

import (
	"strings"

	"github.com/goliatone/go-realiser/pkg/element"
)

// FeatureTitle holds the heading of a DOCUMENT or SECTION.
const FeatureTitle = "title"

// Markers configures the decoration applied to structural documents.
type Markers struct {
	// Bullet prefixes each list item.
	Bullet string
	// Heading renders a title found at the given nesting depth.
	Heading func(depth int, title string) string
}

// Format realises e and every document below it, returning the root text.
func (m Markers) Format(e element.Element) string {
	return m.format(e, 0)
}

func (m Markers) format(e element.Element, depth int) string {
	if e == nil {
		return ""
	}
	doc, ok := e.(*element.DocumentElement)
	if !ok {
		if s, done := e.Realisation(); done {
			return s
		}
		return m.join(e.Children(), depth, " ")
	}

	var out string
	switch doc.Category() {
	case element.CategorySentence:
		if s, done := doc.Realisation(); done {
			out = s
		} else {
			out = m.join(doc.Components(), depth, " ")
		}
	case element.CategoryList:
		lines := make([]string, 0, doc.Len())
		for _, item := range doc.Components() {
			if s := m.format(item, depth+1); s != "" {
				lines = append(lines, m.Bullet+s)
			}
		}
		out = strings.Join(lines, "\n")
	case element.CategorySection, element.CategoryDocument:
		var blocks []string
		if title, ok := doc.Features().Text(FeatureTitle); ok && title != "" && m.Heading != nil {
			blocks = append(blocks, m.Heading(depth, title))
		}
		for _, c := range doc.Components() {
			if s := m.format(c, depth+1); s != "" {
				blocks = append(blocks, s)
			}
		}
		out = strings.Join(blocks, "\n\n")
	default:
		out = m.join(doc.Components(), depth, " ")
	}
	doc.SetRealisation(out)
	return out
}

func (m Markers) join(children []element.Element, depth int, sep string) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		if s := m.format(c, depth+1); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}
