// Package main provides the gnredlist CLI application.
package main

import "github.com/gnames/gnredlist/cmd"

func main() {
	cmd.Execute()
}
