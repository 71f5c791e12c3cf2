package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/openmined/syftpath/pkg/subpath"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newMatchCmd())
}

type matchResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Match     bool   `json:"match"`
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <pattern> [path...]",
		Short: "Print the subpaths whose canonical form matches a glob pattern",
		Long: "Print the canonical form of each subpath that matches the doublestar\n" +
			"glob pattern. Patterns are matched against canonical components without\n" +
			"the leading \"./\", e.g. \"docs/**\" or \"**/*.csv\".\n" +
			"With no path arguments, paths are read from stdin, one per line.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			paths, err := readPaths(cmd, args[1:])
			if err != nil {
				return err
			}
			slog.Debug("matching", "pattern", pattern, "paths", len(paths))

			label := resolveLabel(cmd)
			asJSON := jsonOutput(cmd)
			failed := 0

			for _, path := range paths {
				ok, err := subpath.Match(label, pattern, path)
				if err != nil {
					// A bad pattern kills the whole run, a bad path only this entry.
					var perr *subpath.Error
					if !errors.As(err, &perr) {
						cmd.SilenceUsage = true
						return err
					}
					fmt.Fprintln(cmd.ErrOrStderr(), red(err.Error()))
					failed++
					continue
				}

				canonical, _ := subpath.Normalize(label, path)
				if asJSON {
					if jerr := emitJSON(cmd.OutOrStdout(), matchResult{Input: path, Canonical: canonical, Match: ok}); jerr != nil {
						return jerr
					}
					continue
				}
				if ok {
					fmt.Fprintln(cmd.OutOrStdout(), canonical)
				}
			}

			return batchError(cmd, failed, len(paths))
		},
	}
}
