// pklparse is a developer tool around the Pkl front-end: it tokenizes and
// parses Pkl source and prints the results.
package main

import (
	"os"

	"github.com/cwbudde/go-pkl/cmd/pklparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
