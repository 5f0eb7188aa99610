// Command lesson2 tiles a bitmap background behind a moving bitmap.
package main

import (
	"os"

	"github.com/gogpu/lessons/internal/cli"
)

func main() {
	os.Exit(cli.Main(2, os.Args[1:]))
}
