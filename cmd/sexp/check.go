package main

import (
	"fmt"

	"github.com/NostraDavid/sexp/parse"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate S-expression input",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cfgFile)
		if err != nil {
			return err
		}
		d, err := readInput(args)
		if err != nil {
			return err
		}
		nodes, err := parse.All(d, parse.WithSettings(s))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d top-level value(s)\n", len(nodes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
