package cmd

import (
	"fmt"

	"github.com/cwbudde/lumen/internal/checker"
	"github.com/cwbudde/lumen/internal/interp"
	"github.com/cwbudde/lumen/internal/lexer"
	"github.com/cwbudde/lumen/internal/parser"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Lumen language interpreter",
	Long: `lumen is a compiler front-end and tree-walking interpreter for
Lumen, a small strictly-evaluated functional language with
let-polymorphism-shaped syntax, first-class curried functions,
and mutable records and arrays reached only through heap pointers.`,
	Version: Version,
	// Pipeline errors are already formatted with source context by
	// reportStageError before they reach here.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by a pipeline stage to the process
// exit code a command-line caller should use: 1 for a lex error, 2 for
// a parse error, 3 for a type error, 4 for a runtime error, and 1 for
// anything else (a usage error, a missing file, and so on).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch err.(type) {
	case *lexer.LexError:
		return 1
	case *parser.ParseError:
		return 2
	case *checker.TypeError:
		return 3
	case *interp.RuntimeError:
		return 4
	default:
		return 1
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
