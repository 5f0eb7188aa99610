// Command lesson0 checks that the graphics library initializes.
package main

import (
	"os"

	"github.com/gogpu/lessons/internal/cli"
)

func main() {
	os.Exit(cli.Check(os.Args[1:]))
}
