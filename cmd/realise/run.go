package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-realiser/pkg/element"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run TREE...",
		Short: "Realise each tree file and print one realisation per tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd)
			if err != nil {
				return err
			}

			trees := make([]element.Element, 0, len(args))
			for _, path := range args {
				tree, err := s.decodeFile(path)
				if err != nil {
					return err
				}
				trees = append(trees, tree)
			}

			var out []element.Element
			if a.tracing() {
				for _, tree := range trees {
					realised, err := s.realise(cmd, a, tree)
					if err != nil {
						return err
					}
					out = append(out, realised)
				}
			} else {
				out, err = s.realiser.RealiseBatch(cmd.Context(), trees)
				if err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			for i, e := range out {
				if i > 0 {
					fmt.Fprintln(w)
				}
				printRealisation(w, e)
			}
			return a.flushTraces(cmd, s)
		},
	}
}
