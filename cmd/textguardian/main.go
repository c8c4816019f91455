package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"textguardian/internal/cli"
)

func main() {
	app := cli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Execute(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, cli.ErrIssuesFound) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
