package main

import (
	"fmt"

	"github.com/openmined/syftpath/pkg/subpath"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newJoinCmd())
}

type joinResult struct {
	Inputs    []string `json:"inputs"`
	Canonical string   `json:"canonical,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <path>...",
		Short: "Join subpaths into a single canonical subpath",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, err := subpath.Join(resolveLabel(cmd), args...)

			if jsonOutput(cmd) {
				res := joinResult{Inputs: args, Canonical: canonical}
				if err != nil {
					res.Error = err.Error()
				}
				if jerr := emitJSON(cmd.OutOrStdout(), res); jerr != nil {
					return jerr
				}
				if err != nil {
					cmd.SilenceUsage = true
					cmd.SilenceErrors = true
					return err
				}
				return nil
			}

			if err != nil {
				cmd.SilenceUsage = true
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), canonical)
			return err
		},
	}
}
