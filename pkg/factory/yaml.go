package factory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-realiser/pkg/element"
)

// Node keys recognised by Decode.
const (
	keyDocument   = "document"
	keyPhrase     = "phrase"
	keyWord       = "word"
	keyList       = "list"
	keyComponents = "components"
	keyChildren   = "children"
	keyFeatures   = "features"
	keyCategory   = "category"
	keyReplace    = "replace"
	keyEnum       = "enum"
)

// Decode builds a tree from a YAML tree document using a factory without a
// lexicon.
func Decode(data []byte) (element.Element, error) {
	return New(nil).Decode(data)
}

// Decode builds a tree from a YAML tree document:
//
//	document: SENTENCE
//	components:
//	  - phrase: CLAUSE
//	    features:
//	      subject: {word: Auto, replace: true}
//	      verb: {word: fahren}
//	      tense: {enum: PRESENT}
//	      negated: false
//
// Phrase features keep the order of the YAML mapping. Scalars decode to
// string or bool values, {enum: TAG} to an enum, sequences to element lists
// and other mappings to a single element. Words are resolved through the
// bound lexicon. Anchors and aliases share the same element; an alias that
// refers to one of its own ancestors is rejected with element.ErrCycle.
func (f *Factory) Decode(data []byte) (element.Element, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("factory: tree document is empty")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("factory: parse tree: %w", err)
	}

	d := &decoder{
		factory: f,
		built:   make(map[*yaml.Node]element.Element),
		open:    make(map[*yaml.Node]bool),
	}
	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, errors.New("factory: tree document is empty")
		}
		node = node.Content[0]
	}

	out, err := d.element(node)
	if err != nil {
		return nil, err
	}
	if err := element.Validate(out); err != nil {
		return nil, fmt.Errorf("factory: %w", err)
	}
	return out, nil
}

var allowedKeys = map[string]map[string]bool{
	keyDocument: {keyDocument: true, keyComponents: true, keyFeatures: true},
	keyPhrase:   {keyPhrase: true, keyFeatures: true},
	keyWord:     {keyWord: true, keyCategory: true, keyReplace: true},
	keyList:     {keyList: true, keyChildren: true, keyFeatures: true},
}

type decoder struct {
	factory *Factory
	built   map[*yaml.Node]element.Element
	open    map[*yaml.Node]bool
}

func (d *decoder) element(node *yaml.Node) (element.Element, error) {
	node, err := d.resolve(node)
	if err != nil {
		return nil, err
	}
	if node.Kind != yaml.MappingNode {
		return nil, d.errorf(node, "expected an element mapping")
	}
	if e, ok := d.built[node]; ok {
		return e, nil
	}

	d.open[node] = true
	defer delete(d.open, node)

	fields := pairs(node)
	kind := ""
	for _, k := range []string{keyDocument, keyPhrase, keyWord, keyList} {
		if fields[k] == nil {
			continue
		}
		if kind != "" {
			return nil, d.errorf(node, "element is both %s and %s", kind, k)
		}
		kind = k
	}
	if kind == "" {
		return nil, d.errorf(node, "element needs one of document, phrase, word or list")
	}
	for key := range fields {
		if !allowedKeys[kind][key] {
			return nil, d.errorf(node, "unknown key %q for %s", key, kind)
		}
	}

	var e element.Element
	switch kind {
	case keyDocument:
		e, err = d.document(node, fields)
	case keyPhrase:
		e, err = d.phrase(fields)
	case keyWord:
		e, err = d.word(fields)
	case keyList:
		e, err = d.list(fields)
	}
	if err != nil {
		return nil, err
	}
	d.built[node] = e
	return e, nil
}

// resolve follows an alias to its anchor. Aliases to a node that is still
// being decoded close a cycle.
func (d *decoder) resolve(node *yaml.Node) (*yaml.Node, error) {
	if node.Kind != yaml.AliasNode {
		return node, nil
	}
	target := node.Alias
	if target == nil {
		return nil, d.errorf(node, "unresolved alias")
	}
	if d.open[target] {
		return nil, fmt.Errorf("factory: line %d: alias *%s: %w", node.Line, target.Anchor, element.ErrCycle)
	}
	return target, nil
}

func (d *decoder) document(node *yaml.Node, fields map[string]*yaml.Node) (element.Element, error) {
	category, err := d.category(fields[keyDocument])
	if err != nil {
		return nil, err
	}
	if !category.IsDocument() {
		return nil, d.errorf(node, "%s is not a document category", category)
	}
	components, err := d.elements(fields[keyComponents])
	if err != nil {
		return nil, err
	}
	doc := d.factory.Document(category, components...)
	if err := d.features(doc.Features(), fields[keyFeatures]); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *decoder) phrase(fields map[string]*yaml.Node) (element.Element, error) {
	category, err := d.category(fields[keyPhrase])
	if err != nil {
		return nil, err
	}
	p := d.factory.Phrase(category)
	if err := d.features(p.Features(), fields[keyFeatures]); err != nil {
		return nil, err
	}
	return p, nil
}

func (d *decoder) list(fields map[string]*yaml.Node) (element.Element, error) {
	category, err := d.category(fields[keyList])
	if err != nil {
		return nil, err
	}
	children, err := d.elements(fields[keyChildren])
	if err != nil {
		return nil, err
	}
	l := d.factory.List(category, children...)
	if err := d.features(l.Features(), fields[keyFeatures]); err != nil {
		return nil, err
	}
	return l, nil
}

func (d *decoder) word(fields map[string]*yaml.Node) (element.Element, error) {
	baseNode := fields[keyWord]
	if baseNode.Kind != yaml.ScalarNode || strings.TrimSpace(baseNode.Value) == "" {
		return nil, d.errorf(baseNode, "word needs a base form")
	}
	base := strings.TrimSpace(baseNode.Value)

	category := element.CategoryAny
	categoryNode := fields[keyCategory]
	if categoryNode != nil {
		c, err := d.category(categoryNode)
		if err != nil {
			return nil, err
		}
		category = c
	}

	var w *element.WordElement
	if d.factory.lexicon != nil {
		// Records are shared, so a declared category can only confirm the
		// lexicon's.
		w = d.factory.Word(base)
		if categoryNode != nil && w.Category() != category {
			return nil, d.errorf(categoryNode, "word %q: category %s conflicts with lexicon category %s", base, category, w.Category())
		}
	} else {
		w = element.NewWord(base, category)
	}

	if node := fields[keyReplace]; node != nil {
		var replace bool
		if err := node.Decode(&replace); err != nil {
			return nil, d.errorf(node, "replace must be a boolean")
		}
		if replace {
			w = w.Replaceable()
		}
	}
	return w, nil
}

func (d *decoder) elements(node *yaml.Node) ([]element.Element, error) {
	if node == nil {
		return nil, nil
	}
	node, err := d.resolve(node)
	if err != nil {
		return nil, err
	}
	if node.Kind != yaml.SequenceNode {
		return nil, d.errorf(node, "expected a sequence of elements")
	}
	d.open[node] = true
	defer delete(d.open, node)

	out := make([]element.Element, 0, len(node.Content))
	for _, item := range node.Content {
		e, err := d.element(item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (d *decoder) features(dst *element.Features, node *yaml.Node) error {
	if node == nil {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return d.errorf(node, "features must be a mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		v, err := d.value(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("%w (feature %q)", err, name)
		}
		dst.Set(name, v)
	}
	return nil
}

func (d *decoder) value(node *yaml.Node) (element.Value, error) {
	target, err := d.resolve(node)
	if err != nil {
		return element.Value{}, err
	}

	switch target.Kind {
	case yaml.ScalarNode:
		if target.ShortTag() == "!!bool" {
			b, err := strconv.ParseBool(target.Value)
			if err != nil {
				return element.Value{}, d.errorf(target, "invalid boolean %q", target.Value)
			}
			return element.BoolValue(b), nil
		}
		return element.StringValue(target.Value), nil
	case yaml.SequenceNode:
		elements, err := d.elements(target)
		if err != nil {
			return element.Value{}, err
		}
		return element.ElementsValue(elements...), nil
	case yaml.MappingNode:
		if tag := pairs(target)[keyEnum]; tag != nil && len(target.Content) == 2 {
			return element.EnumValue(tag.Value), nil
		}
		e, err := d.element(target)
		if err != nil {
			return element.Value{}, err
		}
		return element.ElementValue(e), nil
	default:
		return element.Value{}, d.errorf(node, "unsupported feature value")
	}
}

func (d *decoder) category(node *yaml.Node) (element.Category, error) {
	if node.Kind != yaml.ScalarNode || strings.TrimSpace(node.Value) == "" {
		return "", d.errorf(node, "category must be a non-empty string")
	}
	return element.Category(strings.ToUpper(strings.TrimSpace(node.Value))), nil
}

func (d *decoder) errorf(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("factory: line %d: %s", node.Line, fmt.Sprintf(format, args...))
}

func pairs(node *yaml.Node) map[string]*yaml.Node {
	out := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out[node.Content[i].Value] = node.Content[i+1]
	}
	return out
}
