package main

import (
	"os"

	"github.com/albertoserr18/CompE-561-Study-tool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
