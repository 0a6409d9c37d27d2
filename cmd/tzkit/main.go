//go:build !nofs

package main

import (
	"github.com/Fuabioo/tzkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Execute handles printing and os.Exit internally
		_ = err
	}
}
