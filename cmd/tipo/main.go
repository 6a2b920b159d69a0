package main

import (
	"os"

	"go.tipo.dev/cmd/tipo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
