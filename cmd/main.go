package main

import (
	"github.com/charmbracelet/log"

	cmd "github.com/kerbaras/maniverse/cmd/maniverse"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
