package main

import (
	"github.com/NostraDavid/sexp/encode"
	"github.com/NostraDavid/sexp/parse"
	"github.com/spf13/cobra"
)

var canonCmd = &cobra.Command{
	Use:   "canon [file]",
	Short: "Emit the canonical (hashable) form",
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
		out := cmd.OutOrStdout()
		for _, node := range nodes {
			c, err := encode.Canonical(node)
			if err != nil {
				return err
			}
			if _, err := out.Write(c); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(canonCmd)
}
