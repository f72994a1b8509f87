package main

import (
	"os"

	"github.com/msto63/uwu/cmd/uwu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
