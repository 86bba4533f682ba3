package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecsreg-demo",
	Short: "Walk through the ecsreg entity-component registry",
	Long:  "ecsreg-demo exercises the ecsreg registry end to end: lifecycle, reserve/instantiate, views and filters.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
