package main

import (
	"github.com/aretw0/menusys/internal/cli"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <source> <target>",
	Short: "Convert a menu document between locations and formats",
	Long:  `Reads the menu at source and writes it to target. Formats follow the file extensions unless --from/--to are given.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := formatFlag(cmd, "from")
		if err != nil {
			return err
		}
		to, err := formatFlag(cmd, "to")
		if err != nil {
			return err
		}

		store, closeStore, err := cli.OpenStore(cfg.Store)
		if err != nil {
			return err
		}
		defer closeStore()

		return cli.Convert(cmd.Context(), cli.ConvertOptions{
			Source: args[0],
			Target: args[1],
			From:   from,
			To:     to,
			Strict: strictFlag(cmd),
			Store:  store,
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("from", "", "Source format: xml or yaml")
	convertCmd.Flags().String("to", "", "Target format: xml or yaml")
	convertCmd.Flags().Bool("strict", false, "Reject unknown elements in the source")
}
