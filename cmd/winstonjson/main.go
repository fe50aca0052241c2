package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ubesthelp/winstonjson/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	themePath := flag.String("theme", "", "override theme config path (optional)")
	forceColor := flag.Bool("color", false, "apply colors even when stdout is not a terminal")
	flag.Parse()

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "No input.")
		return 0
	}

	opts := app.Options{Path: path, ThemePath: *themePath, ForceColor: *forceColor}
	if err := app.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "winstonjson: %v\n", err)
		return 1
	}
	return 0
}
