// Command library runs the school library lending engine.
//
// Usage:
//
//	library serve              # HTTP API on LIBRARY_HTTP_ADDR
//	library migrate            # bring the events schema up to date
//	library fees resync        # deliver every assessed fine to billing again
//	library directory import   # copy a JSON directory seed into Redis
//
// All settings come from LIBRARY_* environment variables, optionally loaded from an env file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
