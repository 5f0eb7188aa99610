// Command lesson5 draws clips of a sprite sheet, selected with keys 1 to 4.
package main

import (
	"os"

	"github.com/gogpu/lessons/internal/cli"
)

func main() {
	os.Exit(cli.Main(5, os.Args[1:]))
}
