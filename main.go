package main

import (
	"os"

	"github.com/secmon-lab/repotrack/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
