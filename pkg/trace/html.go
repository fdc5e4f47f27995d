package trace

import (
	"fmt"
	"sync"

	"github.com/flosch/pongo2/v6"
)

const htmlSource = `<div class="realiser-trace">
{% for snapshot in snapshots %}<section class="realiser-trace__stage">
<h3>{{ snapshot.stage }}</h3>
<pre>{{ snapshot.tree }}</pre>
</section>
{% endfor %}</div>
`

var (
	htmlOnce     sync.Once
	htmlTemplate *pongo2.Template
	htmlErr      error
)

// HTML renders t as an HTML fragment. Tree dumps are escaped, so word forms
// containing markup are shown literally.
func HTML(t Trace) (string, error) {
	tpl, err := compiledHTML()
	if err != nil {
		return "", err
	}

	snapshots := make([]map[string]any, 0, len(t))
	for _, s := range t {
		snapshots = append(snapshots, map[string]any{
			"stage": s.Stage,
			"tree":  s.Tree,
		})
	}

	out, err := tpl.Execute(pongo2.Context{"snapshots": snapshots})
	if err != nil {
		return "", fmt.Errorf("trace: render html: %w", err)
	}
	return out, nil
}

func compiledHTML() (*pongo2.Template, error) {
	htmlOnce.Do(func() {
		htmlTemplate, htmlErr = pongo2.FromString(htmlSource)
		if htmlErr != nil {
			htmlErr = fmt.Errorf("trace: parse html template: %w", htmlErr)
		}
	})
	return htmlTemplate, htmlErr
}
