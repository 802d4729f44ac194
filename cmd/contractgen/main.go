package main

import (
	"os"

	"github.com/AnTengye/contratos/cmd/contractgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
