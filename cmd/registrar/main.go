// Package main provides the registrar CLI.
package main

import "github.com/mesh-intelligence/registrar/internal/cli"

func main() {
	cli.Execute()
}
