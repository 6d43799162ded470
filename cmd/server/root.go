package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brewlog",
	Short: "Brewlog - coffee inventory and tasting journal",
	Long: `Brewlog tracks coffee beans, the lots on the shelf, tasting notes,
brewing plans, purchases and every brew made.

Run 'brewlog serve' to start the REST API, 'brewlog import' to load beans
from a JSON file, 'brewlog token' to mint an API token or 'brewlog alerts'
to print the freshness alerts of a user.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, importCmd, tokenCmd, alertsCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
