package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-realiser/pkg/element"
)

func newSentenceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sentence TREE",
		Short: "Realise a tree as a single sentence",
		Long:  "Realise a tree as a single sentence. A root that is not a document is wrapped in a SENTENCE first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}
			tree, err := s.decodeFile(args[0])
			if err != nil {
				return err
			}
			if _, ok := tree.(*element.DocumentElement); !ok {
				tree = element.NewSentence(tree)
			}

			out, err := s.realise(cmd, a, tree)
			if err != nil {
				return err
			}
			printRealisation(cmd.OutOrStdout(), out)
			return a.flushTraces(cmd, s)
		},
	}
}
