package main

import (
	"os"

	"github.com/AleOnori98/minigrid-dispatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
