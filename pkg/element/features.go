package element

// Features is an ordered mapping from feature name to Value. Names are unique;
// setting an existing name overwrites its value in place and keeps its
// position. The zero value is ready to use.
type Features struct {
	names  []string
	values map[string]Value
}

// Len returns the number of features.
func (f *Features) Len() int {
	return len(f.names)
}

// Names returns the feature names in insertion order.
func (f *Features) Names() []string {
	return append([]string(nil), f.names...)
}

// Get returns the value stored under name.
func (f *Features) Get(name string) (Value, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Has reports whether name is set.
func (f *Features) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Set stores v under name.
func (f *Features) Set(name string, v Value) {
	if f.values == nil {
		f.values = make(map[string]Value)
	}
	if _, exists := f.values[name]; !exists {
		f.names = append(f.names, name)
	}
	f.values[name] = v
}

// Delete removes name if present.
func (f *Features) Delete(name string) {
	if _, ok := f.values[name]; !ok {
		return
	}
	delete(f.values, name)
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			break
		}
	}
}

// ElementList returns the value under name coerced to an element list; absent
// or non-element features yield an empty list.
func (f *Features) ElementList(name string) []Element {
	v, ok := f.values[name]
	if !ok {
		return []Element{}
	}
	return v.AsElements()
}

// Text returns the string or enum text stored under name.
func (f *Features) Text(name string) (string, bool) {
	v, ok := f.values[name]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Bool returns the boolean stored under name.
func (f *Features) Bool(name string) (bool, bool) {
	v, ok := f.values[name]
	if !ok {
		return false, false
	}
	return v.AsBool()
}

// CopyFrom copies every feature of src into f, skipping element-valued
// features when scalarsOnly is set.
func (f *Features) CopyFrom(src *Features, scalarsOnly bool) {
	if src == nil {
		return
	}
	for _, name := range src.names {
		v := src.values[name]
		if scalarsOnly && v.holdsElements() {
			continue
		}
		f.Set(name, v)
	}
}

func (f *Features) clone() Features {
	out := Features{names: append([]string(nil), f.names...)}
	if f.values != nil {
		out.values = make(map[string]Value, len(f.values))
		for k, v := range f.values {
			out.values[k] = v
		}
	}
	return out
}
