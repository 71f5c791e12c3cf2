package main

import (
	"fmt"

	"github.com/openmined/syftpath/pkg/subpath"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

type checkResult struct {
	Input     string `json:"input"`
	Valid     bool   `json:"valid"`
	Canonical string `json:"canonical,omitempty"`
	Error     string `json:"error,omitempty"`
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check whether each subpath is valid",
		Long:  "Check whether each subpath is valid. The exit status is nonzero when\nany input is rejected.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := readPaths(cmd, args)
			if err != nil {
				return err
			}

			label := resolveLabel(cmd)
			asJSON := jsonOutput(cmd)
			quiet, _ := cmd.Flags().GetBool("quiet")
			failed := 0

			for _, path := range paths {
				canonical, err := subpath.Normalize(label, path)
				if err != nil {
					failed++
				}

				switch {
				case quiet:
				case asJSON:
					res := checkResult{Input: path, Valid: err == nil, Canonical: canonical}
					if err != nil {
						res.Error = err.Error()
					}
					if jerr := emitJSON(cmd.OutOrStdout(), res); jerr != nil {
						return jerr
					}
				case err != nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", red("invalid"), err.Error())
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", green("ok"), path, cyan(canonical))
				}
			}

			return batchError(cmd, failed, len(paths))
		},
	}
	cmd.Flags().BoolP("quiet", "q", false, "Suppress output, report via exit status only")
	return cmd
}
