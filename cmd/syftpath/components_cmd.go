package main

import (
	"fmt"

	"github.com/openmined/syftpath/pkg/subpath"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newComponentsCmd())
}

type componentsResult struct {
	Input      string   `json:"input"`
	Components []string `json:"components,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func newComponentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components [path...]",
		Short: "Print the components of each subpath, one per line",
		Long:  "Print the components of each subpath, one per line. The current\ndirectory has no components. Use --json for unambiguous batch output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := readPaths(cmd, args)
			if err != nil {
				return err
			}

			label := resolveLabel(cmd)
			asJSON := jsonOutput(cmd)
			failed := 0

			for _, path := range paths {
				components, err := subpath.Components(label, path)
				if asJSON {
					res := componentsResult{Input: path, Components: components}
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
				for _, component := range components {
					fmt.Fprintln(cmd.OutOrStdout(), component)
				}
			}

			return batchError(cmd, failed, len(paths))
		},
	}
}
