package main

import (
	"os"

	"github.com/cwbudde/go-lox/cmd/lox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
