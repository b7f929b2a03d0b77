package commands

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/store"
)

var (
	serverURL string
	dataPath  string
	verbose   bool
)

// The base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "convoset",
	Short: "A curation dashboard for conversation fine-tuning datasets",
	Long: `Convoset manages conversation datasets for fine-tuning: browse and edit
turns, insert tool calls with autocompletion, reorder, validate, and check
which training formats a conversation exports to.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:11436", "Base URL of the convoset server")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the local conversation store (defaults to ~/.convoset)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func openStore() (*store.Store, error) {
	path := dataPath
	if path == "" {
		defaultPath, err := store.DefaultPath()
		if err != nil {
			log.Fatalf("Failed to resolve data directory: %s", err.Error())
		}
		path = defaultPath
	}
	return store.Open(path)
}
