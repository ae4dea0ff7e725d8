package main

import (
	"fmt"
	"os"

	"github.com/NostraDavid/sexp/encode"
	"github.com/NostraDavid/sexp/parse"
	"github.com/NostraDavid/sexp/settings"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	prettyIndent  int
	prettyCompact bool
	prettyColor   string
)

var prettyCmd = &cobra.Command{
	Use:   "pretty [file]",
	Short: "Pretty-print in the advanced form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("indent") {
			s.PrettyIndent = settings.IndentWidth(prettyIndent)
		}
		if prettyCompact {
			s.PrettyIndent = nil
		}

		d, err := readInput(args)
		if err != nil {
			return err
		}
		nodes, err := parse.All(d, parse.WithSettings(s))
		if err != nil {
			return err
		}

		opts := []encode.EncodeOption{encode.WithSettings(s)}
		if useColor(prettyColor) {
			if prettyColor == "always" {
				color.NoColor = false
			}
			opts = append(opts, encode.EncodeColors(encode.DefaultColors()))
		}
		out := cmd.OutOrStdout()
		for _, node := range nodes {
			a, err := encode.Advanced(node, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, a)
		}
		return nil
	},
}

// useColor resolves the --color tri-state against the terminal.
func useColor(mode string) bool {
	if noColor || mode == "never" {
		return false
	}
	if mode == "always" {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func init() {
	prettyCmd.Flags().IntVarP(&prettyIndent, "indent", "i", settings.DefaultPrettyIndent, "indent width")
	prettyCmd.Flags().BoolVar(&prettyCompact, "compact", false, "single-line output")
	prettyCmd.Flags().StringVar(&prettyColor, "color", "auto", "colorize output (auto|always|never)")
	rootCmd.AddCommand(prettyCmd)
}
