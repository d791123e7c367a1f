// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tactics-grid/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "tactics-grid",
	Short: "Tactics grid gRPC server",
	Long: `Tactics grid stores battle maps and answers the spatial questions of a turn-based
battle: paths, movement and attack ranges, danger zones, line of sight and fog of war.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
