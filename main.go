// Package main is the entry point for the Fretwise CLI.
package main

import "github.com/mouse-blink/fretwise/cmd"

func main() {
	cmd.Execute()
}
