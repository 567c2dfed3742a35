package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lox/pkg/lox"
)

var replHintColor = color.New(color.FgCyan)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lox session",
	Long:  `Read, evaluate, and print Lox statements one line at a time.`,
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(_ *cobra.Command, _ []string) error {
	useColor := wantColor(os.Stdout.Fd())
	stdout := colorableStdout()

	rl, err := readline.New("lox> ")
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	replHintColor.Fprintln(stdout, "Lox REPL. Press Ctrl+D to exit.")

	lx := lox.New(lox.WithStdout(stdout), lox.WithStderr(colorableStderr()), lox.WithColor(useColor))

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(stdout, "\nbye")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		lx.Reporter().Reset()
		lx.Run(line)
	}
}
