// Command sexp checks, canonicalizes, pretty-prints, views and diffs
// RFC 9804 S-expression files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "sexp",
	Short: "S-expression toolbox",
	Long: `Parse, canonicalize, pretty-print and inspect S-expressions in the
RFC 9804 canonical and advanced transport forms.

Examples:
  sexp check data.sexp              # validate a file
  sexp canon data.sexp > out.csexp  # emit the canonical form
  sexp pretty data.sexp             # human-readable, indented
  sexp view -o yaml data.sexp       # show the tree as YAML
  sexp diff a.sexp b.sexp           # diff two advanced renderings`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML settings file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// readInput reads the named file, or stdin for "-" or no argument.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
