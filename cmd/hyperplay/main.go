// Command hyperplay is a playground for the hyperarray packages: it builds
// arrays from flags or YAML scenarios, prints them, walks sub-views with
// iterators and reshapes arrays through view copies.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
