package main

import (
	"os"

	"github.com/arloliu/strview/cmd/strview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
