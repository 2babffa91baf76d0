package main

import (
	"fmt"
	"os"

	"github.com/m04kA/SMC-SeatingService/internal/cli"
)

func main() {
	if err := cli.NewRoot().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
