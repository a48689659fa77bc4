// Package main provides the flint CLI.
package main

import "github.com/flint-ml/flint/cmd/flint/cmd"

func main() {
	cmd.Execute()
}
