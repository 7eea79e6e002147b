package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/garagekit/cmd/garagectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrInvalid) {
			fmt.Fprintf(os.Stderr, "garagectl: %v\n", err)
		}
		os.Exit(1)
	}
}
