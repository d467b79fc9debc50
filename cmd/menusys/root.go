package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/menusys/internal/config"
	"github.com/aretw0/menusys/pkg/codec"
	"github.com/spf13/cobra"
)

// cfg is loaded before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "menusys",
	Short:         "menusys drives hierarchical text menus",
	Long:          `menusys loads menu trees from XML or YAML documents and runs them interactively, converts them, validates them and serves them over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("debug") {
			loaded.Debug, _ = cmd.Flags().GetBool("debug")
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

// formatFlag resolves a --format style flag, falling back to the configured format.
func formatFlag(cmd *cobra.Command, name string) (codec.Format, error) {
	value := cfg.Format
	if cmd.Flags().Changed(name) {
		value, _ = cmd.Flags().GetString(name)
	}
	return codec.ParseFormat(value)
}

// strictFlag resolves --strict, falling back to the configured value.
func strictFlag(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("strict") {
		strict, _ := cmd.Flags().GetBool("strict")
		return strict
	}
	return cfg.Strict
}
