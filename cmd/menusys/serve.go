package main

import (
	"github.com/aretw0/menusys/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP document server",
	Long:  `Serves the menu documents of the configured store over HTTP, with live change events and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}
		metrics := cfg.Server.Metrics
		if cmd.Flags().Changed("metrics") {
			metrics, _ = cmd.Flags().GetBool("metrics")
		}
		builtins, _ := cmd.Flags().GetBool("builtins")

		store, closeStore, err := cli.OpenStore(cfg.Store)
		if err != nil {
			return err
		}
		defer closeStore()

		return cli.Serve(cmd.Context(), cli.ServeOptions{
			Addr:      addr,
			Store:     store,
			Strict:    strictFlag(cmd),
			Metrics:   metrics,
			Builtins:  builtins,
			Debug:     cfg.Debug,
			LogFormat: cfg.LogFormat,
			Out:       cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default from config, :8080)")
	serveCmd.Flags().Bool("metrics", true, "Expose GET /metrics")
	serveCmd.Flags().Bool("builtins", false, "Reject uploads naming handlers other than the builtin demo handlers")
	serveCmd.Flags().Bool("strict", false, "Reject uploads containing unknown elements")
}
