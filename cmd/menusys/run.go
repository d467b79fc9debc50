package main

import (
	"github.com/aretw0/menusys/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <location>",
	Short: "Run a menu interactively",
	Long: `Loads the menu at location and drives it from standard input.

Location can be a file path, "-" for stdin, an http(s) URL, store://<name>
for the configured document store, or a literal XML document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd, "format")
		if err != nil {
			return err
		}
		jsonMode, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		store, closeStore, err := cli.OpenStore(cfg.Store)
		if err != nil {
			return err
		}
		defer closeStore()

		return cli.Execute(cmd.Context(), cli.RunOptions{
			Location:    args[0],
			Format:      format,
			Strict:      strictFlag(cmd),
			JSON:        jsonMode,
			Debug:       cfg.Debug,
			LogFormat:   cfg.LogFormat,
			Quiet:       quiet,
			MetricsAddr: metricsAddr,
			Store:       store,
			In:          cmd.InOrStdin(),
			Out:         cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().BoolP("quiet", "q", false, "Suppress banner and status messages")
	runCmd.Flags().String("format", "", "Document format: xml or yaml (default: from extension)")
	runCmd.Flags().Bool("strict", false, "Reject unknown elements")
	runCmd.Flags().String("metrics-addr", "", "Expose navigation metrics on this address while running")
}
