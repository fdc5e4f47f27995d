package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. The prompter backs the interactive
// command and is swapped out in tests.
func newRootCmd(p prompter) *cobra.Command {
	a := &app{prompter: p}

	root := &cobra.Command{
		Use:           "realise",
		Short:         "Realise specification trees into text",
		Long:          `realise runs YAML specification trees through synonym resolution, syntax, morphology, orthography and a formatter.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML configuration file")
	flags.StringSliceVar(&a.lexicon, "lexicon", nil, "lexicon glob relative to the working directory (repeatable); defaults to the built-in lexicon")
	flags.StringVar(&a.formatter, "formatter", "", "formatter to use (text|markdown|html)")
	flags.BoolVar(&a.debug, "debug", false, "log a tree snapshot after every stage")
	flags.Uint64Var(&a.seed, "seed", 0, "seed for synonym selection")
	flags.BoolVar(&a.trace, "trace", false, "print the stage trace to stderr")
	flags.StringVar(&a.traceHTML, "trace-html", "", "write the stage trace as HTML to this file")
	flags.StringVar(&a.colour, "color", "auto", "colorize trace output (auto|on|off)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newSentenceCmd(a))
	root.AddCommand(newInteractiveCmd(a))
	root.AddCommand(newFormattersCmd(a))
	return root
}
