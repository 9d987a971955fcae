package main

import (
	"fmt"
	"os"
	"strings"

	"inkwell/cli"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		cli.HandleCommand([]string{"help"})
		os.Exit(1)
	}

	switch strings.ToLower(os.Args[1]) {
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	default:
		cli.HandleCommand(os.Args[1:])
	}
}
