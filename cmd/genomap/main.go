// Command genomap renders circular genome maps from genome JSON files.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
