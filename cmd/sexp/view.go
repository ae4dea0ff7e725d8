package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/NostraDavid/sexp/ir"
	"github.com/NostraDavid/sexp/parse"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var viewFormat string

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Show the parsed tree as YAML or JSON",
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

		views := make([]any, len(nodes))
		for i, node := range nodes {
			views[i] = nodeView(node)
		}
		var doc any = views
		if len(views) == 1 {
			doc = views[0]
		}

		out := cmd.OutOrStdout()
		switch viewFormat {
		case "yaml":
			b, err := yaml.Marshal(doc)
			if err != nil {
				return err
			}
			_, err = out.Write(b)
			return err
		case "json":
			b, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		default:
			return fmt.Errorf("unknown output format %q", viewFormat)
		}
	},
}

// nodeView maps a node to plain values for YAML/JSON marshaling. Binary
// atoms render as hex so the view stays text-safe.
func nodeView(n *ir.Node) any {
	if n.Type == ir.ListType {
		vs := make([]any, len(n.Values))
		for i, c := range n.Values {
			vs[i] = nodeView(c)
		}
		return vs
	}
	if n.IsBytes() {
		return "#" + hex.EncodeToString(n.Bytes) + "#"
	}
	return n.Text
}

func init() {
	viewCmd.Flags().StringVarP(&viewFormat, "output", "o", "yaml", "output format (yaml|json)")
	rootCmd.AddCommand(viewCmd)
}
