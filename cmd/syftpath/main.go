package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/openmined/syftpath/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultLabel = "syftpath"

var (
	red   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	green = color.New(color.FgHiGreen).SprintFunc()
	cyan  = color.New(color.FgHiCyan).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:     "syftpath",
	Short:   "SyftPath CLI",
	Long:    "Normalize, join, check and match subpaths: slash-separated relative paths\naddressing files inside a datasite or other rooted tree.",
	Version: version.Detailed(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bindConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringP("label", "l", defaultLabel, "Operation label reported in diagnostics")
	rootCmd.PersistentFlags().Bool("json", false, "Emit machine-readable JSON, one object per input")
}

func main() {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel(),
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	slog.SetDefault(slog.New(handler))

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if os.Getenv("SYFTPATH_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func bindConfig(cmd *cobra.Command) error {
	root := cmd.Root()
	if err := viper.BindPFlag("label", root.PersistentFlags().Lookup("label")); err != nil {
		return err
	}
	if err := viper.BindPFlag("json", root.PersistentFlags().Lookup("json")); err != nil {
		return err
	}

	// Set up environment variables
	viper.SetEnvPrefix("SYFTPATH")
	viper.AutomaticEnv()

	return nil
}
