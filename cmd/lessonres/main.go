// Command lessonres writes the images and font the lessons load.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/lessons/internal/assets"
)

func main() {
	root := flag.String("root", "res", "resource root, usually next to bin/")
	flag.Parse()

	paths, err := assets.Generate(*root)
	if err != nil {
		log.Fatalf("Failed to generate resources: %v", err)
	}
	for _, p := range paths {
		log.Printf("wrote %s\n", p)
	}
}
