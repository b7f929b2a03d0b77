package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/api"
)

var pullCmd = &cobra.Command{
	Use:   "pull [id]",
	Short: "Download a conversation from the server into the local store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := api.NewClient(serverURL)
		conv, err := client.GetConversation(args[0])
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Save(conv); err != nil {
			return err
		}

		fmt.Printf("Pulled %s (%d turns)\n", conv.ID, len(conv.Turns))
		return nil
	},
}
