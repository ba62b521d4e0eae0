package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"tanvir.dev/internal/cmd"
)

var version = "0.1.0"

func main() {
	if err := cmd.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
