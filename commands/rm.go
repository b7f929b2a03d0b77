package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/api"
)

var rmRemote bool

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if rmRemote {
			client := api.NewClient(serverURL)
			if err := client.DeleteConversation(id); err != nil {
				return err
			}
			fmt.Printf("Deleted %s from server\n", id)
			return nil
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", id)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVar(&rmRemote, "remote", false, "Delete from the server instead of the local store")
}
