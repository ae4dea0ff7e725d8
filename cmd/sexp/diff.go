package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/NostraDavid/sexp/encode"
	"github.com/NostraDavid/sexp/parse"
	"github.com/NostraDavid/sexp/settings"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Diff the advanced renderings of two inputs",
	Long: `Parses both inputs and diffs their pretty-printed advanced forms,
so formatting-only differences between equivalent files disappear.
Exits 1 when the inputs differ.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cfgFile)
		if err != nil {
			return err
		}
		a, err := renderFile(args[0], s)
		if err != nil {
			return err
		}
		b, err := renderFile(args[1], s)
		if err != nil {
			return err
		}
		if a == b {
			return nil
		}

		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(a, b, false)
		dmp.DiffCleanupSemantic(diffs)
		out := cmd.OutOrStdout()
		if useColor("auto") {
			fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
		} else {
			for _, d := range diffs {
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					fmt.Fprintf(out, "+%s", d.Text)
				case diffmatchpatch.DiffDelete:
					fmt.Fprintf(out, "-%s", d.Text)
				default:
					fmt.Fprint(out, d.Text)
				}
			}
			fmt.Fprintln(out)
		}
		os.Exit(1)
		return nil
	},
}

func renderFile(path string, s *settings.Settings) (string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	nodes, err := parse.All(d, parse.WithSettings(s))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	var sb strings.Builder
	for _, node := range nodes {
		a, err := encode.Advanced(node, encode.WithSettings(s))
		if err != nil {
			return "", err
		}
		sb.WriteString(a)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
