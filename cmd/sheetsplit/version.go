package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sheetsplit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sheetsplit", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
