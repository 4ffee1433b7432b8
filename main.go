package main

import (
	"os"

	"github.com/Eein/livesplit-core/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
