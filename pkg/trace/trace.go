// Package trace holds the structured debug trace produced by the realiser:
// an ordered list of (stage label, tree dump) pairs. Rendering helpers for
// consoles and HTML live alongside but are independent of realisation.
package trace

import (
	"strings"

	"github.com/goliatone/go-realiser/pkg/element"
)

// Stage labels in pipeline order.
const (
	LabelInitial     = "INITIAL TREE"
	LabelSyntax      = "POST-SYNTAX TREE"
	LabelMorphology  = "POST-MORPHOLOGY TREE"
	LabelOrthography = "POST-ORTHOGRAPHY TREE"
	LabelFormatter   = "POST-FORMATTER TREE"
)

// Indent is the per-level indent used for captured dumps.
const Indent = "  "

// Snapshot is the tree dump taken after one pipeline step.
type Snapshot struct {
	Stage string `json:"stage"`
	Tree  string `json:"tree"`
}

// Trace is the ordered list of snapshots for one realise call.
type Trace []Snapshot

// Capture appends a dump of e under label and returns the new snapshot.
func (t *Trace) Capture(label string, e element.Element) Snapshot {
	s := Snapshot{Stage: label, Tree: element.PrintTree(e, Indent)}
	*t = append(*t, s)
	return s
}

// Stages returns the labels in order.
func (t Trace) Stages() []string {
	out := make([]string, 0, len(t))
	for _, s := range t {
		out = append(out, s.Stage)
	}
	return out
}

// String concatenates every snapshot, label first, in capture order.
func (t Trace) String() string {
	var b strings.Builder
	for i, s := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.Stage)
		b.WriteByte('\n')
		b.WriteString(s.Tree)
	}
	return b.String()
}
