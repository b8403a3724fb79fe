// ABOUTME: Entry point for Sketchwave
// ABOUTME: Hands control to the command line interface
package main

import "github.com/Resonate-Protocol/sketchwave/internal/cli"

func main() {
	cli.Execute()
}
