package main

import (
	"fmt"
	"log/slog"

	"github.com/openmined/syftpath/pkg/subpath"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newNormalizeCmd())
}

type normalizeResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical,omitempty"`
	Error     string `json:"error,omitempty"`
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [path...]",
		Short: "Print the canonical form of each subpath",
		Long:  "Print the canonical form of each subpath, one per line.\nWith no arguments, paths are read from stdin, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := readPaths(cmd, args)
			if err != nil {
				return err
			}
			slog.Debug("normalizing", "paths", len(paths))

			label := resolveLabel(cmd)
			asJSON := jsonOutput(cmd)
			failed := 0

			for _, path := range paths {
				canonical, err := subpath.Normalize(label, path)
				if asJSON {
					res := normalizeResult{Input: path, Canonical: canonical}
					if err != nil {
						res.Error = err.Error()
						failed++
					}
					if err := emitJSON(cmd.OutOrStdout(), res); err != nil {
						return err
					}
					continue
				}

				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), red(err.Error()))
					failed++
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), canonical)
			}

			return batchError(cmd, failed, len(paths))
		},
	}
}
