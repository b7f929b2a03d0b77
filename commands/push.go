package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/api"
)

var pushCmd = &cobra.Command{
	Use:   "push [id]",
	Short: "Upload a local conversation to the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		conv, err := s.Load(args[0])
		if err != nil {
			return err
		}

		client := api.NewClient(serverURL)
		if err := client.SaveConversation(conv); err != nil {
			return err
		}

		fmt.Printf("Pushed %s (%d turns)\n", conv.ID, len(conv.Turns))
		return nil
	},
}
