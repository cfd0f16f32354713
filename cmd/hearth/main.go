package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/zaotai/hearth/app"
	"github.com/zaotai/hearth/internal/config"
)

func run(args []string) error {
	config.InitializePaths()

	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
