// Package main is the entry point for the bladegen CLI.
package main

import "bladegen.dev/pkg/bladegen/cmd"

func main() {
	cmd.Execute()
}
