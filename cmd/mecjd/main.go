// mecjd serves the Pima diabetes and protein-sequence classifiers over HTTP.
//
// Usage:
//
//	# Serve ./src/main/public and train on the embedded dataset
//	mecjd
//
//	# Custom config file and listen address
//	mecjd --config mecjd.yaml --addr :9090
//
//	# Show version information
//	mecjd version
package main

import (
	"fmt"
	"os"
)

func main() {
	loadDotEnv()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
