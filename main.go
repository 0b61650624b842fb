// main.go
//
// Entry point for the wordle binary. Configuration, logging and the
// dictionary are loaded by the cli package before any command runs.

package main

import "github.com/robalobadob/wordle-solver/internal/cli"

func main() {
	cli.Execute()
}
