package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/prettysitter/internal/cli"
	"github.com/arthur-debert/prettysitter/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err.Error()))
		os.Exit(1)
	}
}
