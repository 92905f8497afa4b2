package main

import (
	"os"

	"github.com/baaaaaaaka/float-launcher/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
