// Command lesson1 shows a bitmap stretched over the window.
package main

import (
	"os"

	"github.com/gogpu/lessons/internal/cli"
)

func main() {
	os.Exit(cli.Main(1, os.Args[1:]))
}
