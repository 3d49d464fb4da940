package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/stencil/cmd/stencil"
	"github.com/arthur-debert/stencil/internal/version"
)

func main() {
	rootCmd := stencil.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "STENCIL",
		Section: "1",
		Source:  "stencil " + version.Version,
		Manual:  "stencil manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
