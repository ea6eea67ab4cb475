// Package main is the entry point for parse-yaml.
package main

import (
	"os"

	"github.com/OleBialas/quarto-docker-render/cmd/parse-yaml/commands"
)

func main() {
	os.Exit(commands.Execute())
}
