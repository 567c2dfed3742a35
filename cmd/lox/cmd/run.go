package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lox/pkg/lox"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox script",
	Long: `Execute a Lox program from a file or inline expression.

Examples:
  # Run a script file
  lox run script.lox

  # Evaluate inline code instead of reading from a file
  lox run -e "print 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	useColor := wantColor(os.Stderr.Fd())

	if evalExpr != "" {
		lx := lox.New(lox.WithStdout(colorableStdout()), lox.WithStderr(colorableStderr()), lox.WithColor(useColor))
		lx.Run(evalExpr)
		os.Exit(exitCodeFor(lx.Reporter()))
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[running %s]\n", args[0])
	}

	code, err := lox.RunFile(args[0], lox.WithStdout(colorableStdout()), lox.WithStderr(colorableStderr()), lox.WithColor(useColor))
	if err != nil {
		return err
	}
	os.Exit(code)
	return nil
}

func exitCodeFor(r interface {
	HadRuntimeError() bool
	HadCompileError() bool
}) int {
	switch {
	case r.HadRuntimeError():
		return lox.ExitSoftware
	case r.HadCompileError():
		return lox.ExitData
	default:
		return lox.ExitSuccess
	}
}
