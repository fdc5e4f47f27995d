package trace

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// WriteText renders t for a terminal. Stage headers are highlighted when
// colour is true.
func WriteText(w io.Writer, t Trace, colour bool) error {
	header := color.New(color.FgCyan, color.Bold)
	if colour {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	for i, s := range t {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := header.Fprintln(w, s.Stage); err != nil {
			return err
		}
		if _, err := io.WriteString(w, s.Tree); err != nil {
			return err
		}
	}
	return nil
}
