// Command lvroute plans warehouse deliveries over a road network.
package main

import (
	"os"

	"github.com/katalvlaran/lvroute/cli"
)

func main() {
	if err := cli.New().Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
