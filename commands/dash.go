package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/tui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive curation dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			log.Fatalf("Failed to open store: %s", err.Error())
		}
		defer s.Close()

		return tui.Run(s)
	},
}
