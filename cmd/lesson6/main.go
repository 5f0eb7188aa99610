// Command lesson6 renders TrueType text as background and sprite.
package main

import (
	"os"

	"github.com/gogpu/lessons/internal/cli"
)

func main() {
	os.Exit(cli.Main(6, os.Args[1:]))
}
