// Command lesson3 scrolls PNG tiles behind a pulsing sprite.
package main

import (
	"os"

	"github.com/gogpu/lessons/internal/cli"
)

func main() {
	os.Exit(cli.Main(3, os.Args[1:]))
}
