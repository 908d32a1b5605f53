package main

import (
	"go.seanlatimer.dev/pick/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}
