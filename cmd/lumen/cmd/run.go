package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/lumen/internal/checker"
	"github.com/cwbudde/lumen/internal/errors"
	"github.com/cwbudde/lumen/internal/interp"
	"github.com/cwbudde/lumen/internal/lexer"
	"github.com/cwbudde/lumen/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr  string
	dumpAST   bool
	trace     bool
	typeCheck bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lumen program",
	Long: `Execute a Lumen program from a file or inline expression.

Examples:
  # Run a script file
  lumen run program.lum

  # Evaluate an inline expression
  lumen run -e "let rec fact (n:int):int = if n <= 1 then 1 else n * fact (n-1) in fact 5"

  # Run with AST dump (for debugging)
  lumen run --dump-ast program.lum

  # Run with execution trace
  lumen run --trace program.lum`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace each pipeline stage to stderr")
	runCmd.Flags().BoolVar(&typeCheck, "type-check", true, "type-check the program before evaluating it")
}

func runScript(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	var input, filename string
	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			err = fmt.Errorf("failed to read file %s: %w", filename, err)
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		input = string(content)
	default:
		err := fmt.Errorf("either provide a file path or use -e flag for inline code")
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[lex] %s\n", filename)
	}
	l := lexer.New(input)
	p := parser.New(l)
	program, err := p.ParseProgram()
	if err != nil {
		return reportStageError(err, input, filename)
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	c := checker.New()
	if typeCheck {
		if trace {
			fmt.Fprintf(os.Stderr, "[check] %s\n", filename)
		}
		if _, err := c.Check(program); err != nil {
			return reportStageError(err, input, filename)
		}
	} else if verbose {
		fmt.Fprintln(os.Stderr, "type checking disabled")
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[eval] %s\n", filename)
	}
	ev := interp.New(c.Decls())
	if trace {
		ev.Trace = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	result, err := ev.Eval(program)
	if err != nil {
		return reportStageError(err, input, filename)
	}

	fmt.Println(interp.Render(result, ev.Heap()))
	return nil
}

// reportStageError prints a pipeline error with source context and
// returns it unwrapped, so ExitCode can still type-switch on it.
func reportStageError(err error, source, filename string) error {
	pos, msg := stageErrorDetail(err)
	ce := errors.NewCompilerError(pos, msg, source, filename)
	fmt.Fprintln(os.Stderr, ce.Format(true))
	return err
}

func stageErrorDetail(err error) (lexer.Position, string) {
	switch e := err.(type) {
	case *lexer.LexError:
		return e.Pos, e.Message
	case *parser.ParseError:
		return e.Pos, e.Message
	case *checker.TypeError:
		return e.Pos, e.Message
	case *interp.RuntimeError:
		return e.Pos, e.Message
	default:
		return lexer.Position{}, err.Error()
	}
}
