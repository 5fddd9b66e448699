package main

import (
	"os"

	"github.com/dimi-r1/create-fb-react/cmd"
	"github.com/dimi-r1/create-fb-react/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
