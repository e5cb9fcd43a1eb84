// cubeview - animated view of a cube held by an external solving service.
package main

import (
	"github.com/SeamusWaldron/cubeview/internal/cli"
)

func main() {
	cli.Execute()
}
