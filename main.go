// Package main is the entry point for the snake CLI.
package main

import "gooze.dev/pkg/snake/cmd"

func main() {
	cmd.Execute()
}
