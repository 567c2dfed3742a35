package cmd

import (
	"io"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// colorableStdout and colorableStderr wrap os.Stdout/os.Stderr so the
// Reporter's ANSI color codes render correctly on Windows consoles,
// which don't natively interpret escape sequences. On other platforms
// these wrappers pass bytes straight through.
func colorableStdout() io.Writer {
	return colorable.NewColorableStdout()
}

func colorableStderr() io.Writer {
	return colorable.NewColorableStderr()
}

// wantColor reports whether fd is a terminal, used to gate the
// Reporter's ANSI output so piped/redirected runs stay plain text.
func wantColor(fd uintptr) bool {
	return isatty.IsTerminal(fd)
}
