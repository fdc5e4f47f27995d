package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-realiser/pkg/factory"
)

const treePattern = "**/*.{yaml,yml}"

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive [DIR]",
		Short: "Pick a tree file and formatter, then realise it repeatedly",
		Long:  "Pick a tree file below DIR (default: the working directory) and a formatter, then realise it until you stop. Without a seed every run may draw different synonyms.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.prompter == nil {
				return errors.New("interactive mode needs a terminal")
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return a.interactive(cmd, dir)
		},
	}
}

func (a *app) interactive(cmd *cobra.Command, dir string) error {
	ctx := cmd.Context()

	cfg, err := a.settings(cmd)
	if err != nil {
		return err
	}
	trees, err := doublestar.Glob(os.DirFS(dir), treePattern)
	if err != nil {
		return fmt.Errorf("find trees in %s: %w", dir, err)
	}
	if len(trees) == 0 {
		return fmt.Errorf("no tree files found in %s", dir)
	}
	sort.Strings(trees)

	treeIdx, err := a.prompter.Select(ctx, SelectConfig{
		Message:  "Tree file",
		Options:  trees,
		PageSize: 10,
	})
	if err != nil {
		return err
	}
	if treeIdx < 0 {
		return errors.New("no tree selected")
	}

	names := formatters().List()
	formatterIdx, err := a.prompter.Select(ctx, SelectConfig{
		Message:      "Formatter",
		Options:      names,
		DefaultIndex: indexOf(names, cfg.Formatter),
	})
	if err != nil {
		return err
	}
	if formatterIdx >= 0 {
		cfg.Formatter = names[formatterIdx]
	}

	showTrace, err := a.prompter.Confirm(ctx, ConfirmConfig{
		Message: "Print the stage trace?",
		Default: a.trace,
	})
	if err != nil {
		return err
	}
	a.trace = showTrace

	seedDefault := ""
	if cfg.Seeded {
		seedDefault = strconv.FormatUint(cfg.Seed, 10)
	}
	seed, err := a.prompter.Input(ctx, InputConfig{
		Message: "Seed (blank for random)",
		Default: seedDefault,
		Validator: func(v string) error {
			if strings.TrimSpace(v) == "" {
				return nil
			}
			_, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
			return err
		},
	})
	if err != nil {
		return err
	}
	if seed = strings.TrimSpace(seed); seed != "" {
		n, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("seed %q: %w", seed, err)
		}
		cfg.Seed, cfg.Seeded = n, true
	} else {
		cfg.Seeded = false
	}

	lex, err := loadLexicon(cfg.Lexicon)
	if err != nil {
		return err
	}
	r, err := newRealiser(cmd.ErrOrStderr(), cfg, lex)
	if err != nil {
		return err
	}
	s := &session{cfg: cfg, lexicon: lex, factory: factory.New(lex), realiser: r}

	path := filepath.Join(dir, trees[treeIdx])
	for {
		// Decode on every pass; stages mutate the tree they realise.
		tree, err := s.decodeFile(path)
		if err != nil {
			return err
		}
		out, err := s.realise(cmd, a, tree)
		if err != nil {
			return err
		}
		printRealisation(cmd.OutOrStdout(), out)
		if err := a.flushTraces(cmd, s); err != nil {
			return err
		}

		again, err := a.prompter.Confirm(ctx, ConfirmConfig{
			Message: "Realise again?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
