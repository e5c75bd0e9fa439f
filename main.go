package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quadem/paramgen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	os.Exit(commands.Run(context.Background(), os.Args, build(), os.Stdout, os.Stderr))
}
