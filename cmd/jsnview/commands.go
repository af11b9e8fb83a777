// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/jsnview/internal/history"
	"github.com/petar-djukic/jsnview/pkg/jsnview"
)

// newRenderCmd creates the "render" command.
func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Write the report of each model file",
		Long: "Render writes one report per model file, placed according to --output. " +
			"Files that are not model files are reported and skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: runRender,
	}
	cmd.Flags().Bool("stdout", false, "Write reports to standard output instead of files")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	v, err := newViewer()
	if err != nil {
		return err
	}
	quiet := viper.GetBool("quiet")

	if stdout, _ := cmd.Flags().GetBool("stdout"); stdout {
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading model: %w", err)
			}
			sum, err := v.Render(os.Stdout, data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
				continue
			}
			if sum.Unknown > 0 {
				fmt.Fprintf(os.Stderr, "unknown data in model %s\n", path)
			}
		}
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var status io.Writer = os.Stderr
	if quiet {
		status = io.Discard
	}
	res, err := v.RenderFiles(ctx, args, status)
	if err != nil {
		return err
	}
	if quiet {
		for _, path := range res.Unknown {
			fmt.Fprintf(os.Stderr, "unknown data in model %s\n", path)
		}
	}
	if len(res.Errors) > 0 {
		return fmt.Errorf("%d of %d files failed", len(res.Errors), len(args))
	}
	return nil
}

// newTablesCmd creates the "tables" command.
func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables FILE",
		Short: "Print the resolved symbol tables of a model file as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViewer()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading model: %w", err)
			}
			return v.WriteTables(os.Stdout, data)
		},
	}
}

// newDiffCmd creates the "diff" command.
func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff OLD NEW | diff --rev REV FILE",
		Short: "Show the report lines that differ between two model files",
		Long: "Diff renders two model files and prints the report lines that changed. " +
			"With --rev the old model is read from a git revision of FILE.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runDiff,
	}
	cmd.Flags().Bool("ignore-space", false, "Ignore differences in runs of spaces")
	cmd.Flags().String("rev", "", "Compare FILE with its version at this git revision")
	cmd.Flags().IntP("context", "C", 0, "Unchanged lines shown around each change")
	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	v, err := newViewer()
	if err != nil {
		return err
	}
	rev, _ := cmd.Flags().GetString("rev")

	var oldData, newData []byte
	switch {
	case rev != "" && len(args) == 1:
		repo, err := history.Open(args[0])
		if err != nil {
			return err
		}
		if oldData, err = repo.FileAt(rev, args[0]); err != nil {
			return err
		}
		if newData, err = os.ReadFile(args[0]); err != nil {
			return fmt.Errorf("reading model: %w", err)
		}
	case rev == "" && len(args) == 2:
		if oldData, err = os.ReadFile(args[0]); err != nil {
			return fmt.Errorf("reading model: %w", err)
		}
		if newData, err = os.ReadFile(args[1]); err != nil {
			return fmt.Errorf("reading model: %w", err)
		}
	default:
		return fmt.Errorf("diff needs two files, or one file with --rev")
	}

	ignoreSpace, _ := cmd.Flags().GetBool("ignore-space")
	contextLines, _ := cmd.Flags().GetInt("context")
	res, err := v.Diff(os.Stdout, oldData, newData, jsnview.DiffOptions{IgnoreSpace: ignoreSpace, Context: contextLines})
	if err != nil {
		return err
	}
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, "%d lines added, %d removed, similarity %.3f\n",
			res.Inserted, res.Deleted, res.Similarity)
	}
	return nil
}

// newHistoryCmd creates the "history" command.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history FILE",
		Short: "List the git commits that changed a model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			repo, err := history.Open(args[0])
			if err != nil {
				return err
			}
			revs, err := repo.Revisions(args[0], limit)
			if err != nil {
				return err
			}
			modified, err := repo.IsModified(args[0])
			if err != nil {
				return err
			}
			if modified {
				fmt.Println("(working copy);modified")
			}
			for _, r := range revs {
				fmt.Printf("%s;%s;%s;%s\n", r.Hash, r.When.Format("2006-01-02 15:04"), r.Author, r.Subject)
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", 0, "Show at most this many commits (0 = all)")
	return cmd
}

// newSectionsCmd creates the "sections" command.
func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the report sections in output order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i, name := range jsnview.Sections() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d %s\n", i+1, name)
			}
		},
	}
}

func newViewer() (*jsnview.Viewer, error) {
	switches, err := switchOrientation(viper.GetStringMap("switches"))
	if err != nil {
		return nil, err
	}
	v, err := jsnview.New(jsnview.Config{
		Version:   version,
		Placement: viper.GetString("output"),
		Switches:  switches,
	})
	if err != nil {
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return v, nil
}

// switchOrientation converts the switches map of the config file. Viper
// lowercases keys, so names are restored to upper case.
func switchOrientation(raw map[string]any) (map[string]int64, error) {
	out := make(map[string]int64, len(raw))
	for name, value := range raw {
		v, err := cast.ToInt64E(value)
		if err != nil {
			return nil, fmt.Errorf("switch %s: %w", name, err)
		}
		out[strings.ToUpper(name)] = v
	}
	return out, nil
}
