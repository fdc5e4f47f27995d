package element

import (
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueElement
	ValueElements
	ValueString
	ValueBool
	ValueEnum
)

func (k ValueKind) String() string {
	switch k {
	case ValueElement:
		return "element"
	case ValueElements:
		return "elements"
	case ValueString:
		return "string"
	case ValueBool:
		return "bool"
	case ValueEnum:
		return "enum"
	default:
		return "invalid"
	}
}

// Value is a feature value. Exactly one variant is populated, selected by
// Kind; the zero Value is ValueInvalid.
type Value struct {
	kind     ValueKind
	element  Element
	elements []Element
	text     string
	flag     bool
}

// ElementValue wraps a single element.
func ElementValue(e Element) Value {
	return Value{kind: ValueElement, element: e}
}

// ElementsValue wraps an ordered element list. The slice is copied.
func ElementsValue(elements ...Element) Value {
	return Value{kind: ValueElements, elements: append([]Element(nil), elements...)}
}

// StringValue wraps a string primitive.
func StringValue(s string) Value {
	return Value{kind: ValueString, text: s}
}

// BoolValue wraps a boolean primitive.
func BoolValue(b bool) Value {
	return Value{kind: ValueBool, flag: b}
}

// EnumValue wraps an enumeration tag such as PLURAL or PAST.
func EnumValue(tag string) Value {
	return Value{kind: ValueEnum, text: tag}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsZero reports whether v holds no variant.
func (v Value) IsZero() bool {
	return v.kind == ValueInvalid
}

// AsElement returns the wrapped element for ValueElement values.
func (v Value) AsElement() (Element, bool) {
	if v.kind != ValueElement {
		return nil, false
	}
	return v.element, true
}

// AsElements coerces the value to an ordered element list. A single element
// becomes a one-item list; non-element variants and nil elements yield an
// empty list. The returned slice is a copy the caller may modify.
func (v Value) AsElements() []Element {
	switch v.kind {
	case ValueElement:
		if v.element == nil {
			return []Element{}
		}
		return []Element{v.element}
	case ValueElements:
		return append([]Element{}, v.elements...)
	default:
		return []Element{}
	}
}

// AsString returns the text of ValueString and ValueEnum values.
func (v Value) AsString() (string, bool) {
	if v.kind != ValueString && v.kind != ValueEnum {
		return "", false
	}
	return v.text, true
}

// AsBool returns the flag of ValueBool values.
func (v Value) AsBool() (bool, bool) {
	if v.kind != ValueBool {
		return false, false
	}
	return v.flag, true
}

// String renders the value for tree dumps.
func (v Value) String() string {
	switch v.kind {
	case ValueElement:
		return describeShort(v.element)
	case ValueElements:
		parts := make([]string, 0, len(v.elements))
		for _, e := range v.elements {
			parts = append(parts, describeShort(e))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ValueString:
		return strconv.Quote(v.text)
	case ValueBool:
		return strconv.FormatBool(v.flag)
	case ValueEnum:
		return v.text
	default:
		return "<invalid>"
	}
}

func (v Value) holdsElements() bool {
	return v.kind == ValueElement || v.kind == ValueElements
}
