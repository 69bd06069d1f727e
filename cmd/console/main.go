// escolar-console is a small command-line consumer of the school
// administration core: it wires configuration, the service client and
// the entity stores, and exposes list/count browsing per entity.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
