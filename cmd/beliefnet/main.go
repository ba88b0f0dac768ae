// beliefnet - query the Monty Hall network with exact inference
package main

import (
	"os"

	"github.com/beliefnet/beliefnet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
