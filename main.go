package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"carrego/internal/cmd"
	"carrego/version"
)

func main() {
	// Parse CLI arguments with Kong
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("carrego"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	// Execute the selected command
	err := ctx.Run()
	if closeErr := cli.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
