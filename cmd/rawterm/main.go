package main

import (
	"os"

	"github.com/xyproto/rawterm/cmd/rawterm/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
