package main

import (
	"fmt"

	"github.com/aretw0/menusys/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <location>",
	Short: "Check a menu document for consistency",
	Long:  `Loads the menu and reports empty menus, missing selectors or descriptions and duplicate selectors.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd, "format")
		if err != nil {
			return err
		}
		watch, _ := cmd.Flags().GetBool("watch")
		builtins, _ := cmd.Flags().GetBool("builtins")

		store, closeStore, err := cli.OpenStore(cfg.Store)
		if err != nil {
			return err
		}
		defer closeStore()

		err = cli.Validate(cmd.Context(), cli.ValidateOptions{
			Location: args[0],
			Format:   format,
			Strict:   strictFlag(cmd),
			Watch:    watch,
			Debug:    cfg.Debug,
			Builtins: builtins,
			Store:    store,
			Out:      cmd.OutOrStdout(),
		})
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolP("watch", "w", false, "Re-validate whenever the file changes")
	validateCmd.Flags().Bool("builtins", false, "Require handler names to match the builtin demo handlers")
	validateCmd.Flags().String("format", "", "Document format: xml or yaml (default: from extension)")
	validateCmd.Flags().Bool("strict", false, "Reject unknown elements")
}
