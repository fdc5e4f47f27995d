package element

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCycle reports an element that is its own ancestor.
var ErrCycle = errors.New("element: cycle detected")

// PrintTree renders e and its descendants one element per line. Each depth
// level is prefixed with one copy of indent; an empty indent yields plain
// newline-separated lines. Phrase children are labelled with the feature that
// holds them. A nil element renders as "<nil>".
func PrintTree(e Element, indent string) string {
	var b strings.Builder
	printTree(&b, e, "", indent, 0)
	return b.String()
}

func printTree(b *strings.Builder, e Element, label, indent string, depth int) {
	b.WriteString(strings.Repeat(indent, depth))
	if label != "" {
		b.WriteString(label)
		b.WriteString(": ")
	}
	if e == nil {
		b.WriteString("<nil>\n")
		return
	}
	b.WriteString(describe(e))
	b.WriteByte('\n')

	if p, ok := e.(*PhraseElement); ok {
		for _, name := range p.features.names {
			v := p.features.values[name]
			if !v.holdsElements() {
				continue
			}
			for _, child := range v.AsElements() {
				printTree(b, child, name, indent, depth+1)
			}
		}
		return
	}
	for _, child := range e.Children() {
		printTree(b, child, "", indent, depth+1)
	}
}

func describe(e Element) string {
	var b strings.Builder
	switch v := e.(type) {
	case *DocumentElement:
		fmt.Fprintf(&b, "DocumentElement: category=%s", v.category)
	case *PhraseElement:
		fmt.Fprintf(&b, "PhraseElement: category=%s", v.category)
	case *WordElement:
		fmt.Fprintf(&b, "WordElement: base=%s category=%s", strconv.Quote(v.base), v.category)
		if len(v.synonyms) > 0 {
			names := make([]string, 0, len(v.synonyms))
			for _, s := range v.synonyms {
				names = append(names, s.base)
			}
			fmt.Fprintf(&b, " synonyms=[%s]", strings.Join(names, ", "))
		}
		if v.replace {
			b.WriteString(" replace=true")
		}
	case *ListElement:
		fmt.Fprintf(&b, "ListElement: category=%s", v.category)
	}

	features := e.Features()
	var scalars []string
	for _, name := range features.names {
		v := features.values[name]
		if v.holdsElements() {
			continue
		}
		scalars = append(scalars, name+"="+v.String())
	}
	if len(scalars) > 0 {
		fmt.Fprintf(&b, " features={%s}", strings.Join(scalars, ", "))
	}
	if s, ok := e.Realisation(); ok {
		fmt.Fprintf(&b, " realisation=%s", strconv.Quote(s))
	}
	return b.String()
}

func describeShort(e Element) string {
	switch v := e.(type) {
	case nil:
		return "<nil>"
	case *WordElement:
		return "word(" + v.base + ")"
	default:
		return e.Kind().String() + "(" + string(e.Category()) + ")"
	}
}

// Walk visits root and its descendants depth-first, left to right. Returning
// false from fn skips the element's children.
func Walk(root Element, fn func(Element) bool) {
	if root == nil || fn == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.Children() {
		Walk(child, fn)
	}
}

// Validate checks that no element in the tree is its own ancestor. Elements
// shared between siblings, such as lexicon words, are allowed.
func Validate(root Element) error {
	onPath := make(map[Element]struct{})
	var visit func(Element) error
	visit = func(e Element) error {
		if e == nil {
			return nil
		}
		if _, seen := onPath[e]; seen {
			return fmt.Errorf("%w at %s", ErrCycle, describeShort(e))
		}
		onPath[e] = struct{}{}
		for _, child := range e.Children() {
			if err := visit(child); err != nil {
				return err
			}
		}
		delete(onPath, e)
		return nil
	}
	return visit(root)
}
