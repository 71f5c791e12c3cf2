package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resolveLabel determines the diagnostics label, honoring (in order):
// 1) An explicitly set --label flag
// 2) SYFTPATH_LABEL environment variable (via viper)
// 3) The default label
func resolveLabel(cmd *cobra.Command) string {
	if f := cmd.Flag("label"); f != nil && f.Changed {
		return f.Value.String()
	}

	if v := viper.GetString("label"); v != "" {
		return v
	}

	return defaultLabel
}

// jsonOutput reports whether the command should emit JSON instead of plain text.
func jsonOutput(cmd *cobra.Command) bool {
	if f := cmd.Flag("json"); f != nil && f.Changed {
		return f.Value.String() == "true"
	}

	return viper.GetBool("json")
}

// readPaths returns the positional arguments, or one path per non-blank line
// of stdin when no arguments were given.
func readPaths(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var paths []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return paths, nil
}

func emitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

// batchError summarizes a partially failed batch. Per-path diagnostics have
// already been written, so suppress cobra's usage dump.
func batchError(cmd *cobra.Command, failed, total int) error {
	if failed == 0 {
		return nil
	}
	cmd.SilenceUsage = true
	return fmt.Errorf("%d of %d paths invalid", failed, total)
}
