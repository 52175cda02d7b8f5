// cafog - correction of glycoform abundances for glycation
package main

import (
	"fmt"
	"os"

	"github.com/glycoproteomics/cafog/cmd/cafog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
