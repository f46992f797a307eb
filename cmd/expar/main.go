package main

import (
	"os"

	"github.com/msto63/expar/cmd/expar/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
