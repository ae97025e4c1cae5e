// Package main implements the todoweb terminal client.
package main

import (
	"os"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/client"
	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "todoweb",
	Short: "Weekly to-do tracker client",
	Long:  "todoweb manages weekly task-sets against a running to-do server.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaultServer := os.Getenv("TODO_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:2001"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServer,
		"base URL of the to-do server")
}

func apiClient() *client.Client {
	return client.New(serverURL)
}
