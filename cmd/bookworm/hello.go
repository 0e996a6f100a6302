package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Print a friendly greeting",
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		fmt.Printf("Helloooo, %s!\n", name)
	},
}

func init() {
	helloCmd.Flags().String("name", "World", "the name to greet")

	rootCmd.AddCommand(helloCmd)
}
