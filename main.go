package main

import (
	"os"

	"github.com/smehta/examiner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
