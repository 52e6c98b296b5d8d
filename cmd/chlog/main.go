package main

import (
	"os"

	"github.com/blackroad/chlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
