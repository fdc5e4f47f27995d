package trace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-realiser/pkg/element"
	"github.com/goliatone/go-realiser/pkg/trace"
)

func sampleTrace() trace.Trace {
	var tr trace.Trace
	word := element.NewWord("<b>Haus</b>", element.CategoryNoun)
	tr.Capture(trace.LabelInitial, word)
	tr.Capture(trace.LabelSyntax, element.NewSentence(word))
	return tr
}

func TestTrace_StringKeepsOrder(t *testing.T) {
	tr := sampleTrace()

	if diff := cmp.Diff([]string{trace.LabelInitial, trace.LabelSyntax}, tr.Stages()); diff != "" {
		t.Fatalf("stages mismatch (-want +got):\n%s", diff)
	}

	want := "INITIAL TREE\n" +
		"WordElement: base=\"<b>Haus</b>\" category=NOUN\n" +
		"\n" +
		"POST-SYNTAX TREE\n" +
		"DocumentElement: category=SENTENCE\n" +
		"  WordElement: base=\"<b>Haus</b>\" category=NOUN\n"
	if diff := cmp.Diff(want, tr.String()); diff != "" {
		t.Fatalf("string mismatch (-want +got):\n%s", diff)
	}
}

func TestTrace_NilElementSnapshot(t *testing.T) {
	var tr trace.Trace
	s := tr.Capture(trace.LabelFormatter, nil)
	if s.Tree != "<nil>\n" || len(tr) != 1 {
		t.Fatalf("unexpected snapshot %#v", s)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := trace.WriteText(&buf, sampleTrace(), false); err != nil {
		t.Fatalf("write text: %v", err)
	}
	if diff := cmp.Diff(sampleTrace().String(), buf.String()); diff != "" {
		t.Fatalf("plain text output should match String (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := trace.WriteText(&buf, sampleTrace(), true); err != nil {
		t.Fatalf("write coloured text: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes in coloured output: %q", buf.String())
	}
}

func TestHTML(t *testing.T) {
	out, err := trace.HTML(sampleTrace())
	if err != nil {
		t.Fatalf("html: %v", err)
	}
	if strings.Contains(out, "<b>Haus</b>") {
		t.Fatalf("word markup must be escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;Haus&lt;/b&gt;") {
		t.Fatalf("expected escaped word in output:\n%s", out)
	}
	first := strings.Index(out, trace.LabelInitial)
	second := strings.Index(out, trace.LabelSyntax)
	if first < 0 || second < 0 || first > second {
		t.Fatalf("stage headers missing or out of order:\n%s", out)
	}
}
