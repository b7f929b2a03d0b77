package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/api"
	"github.com/smerlos/convoset/catalog"
	"github.com/smerlos/convoset/turn"
)

var (
	newDomain string
	newRemote bool
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if catalog.ToolNames(newDomain) == nil {
			return fmt.Errorf("unknown domain %q, available: %v", newDomain, catalog.Domains())
		}

		if newRemote {
			client := api.NewClient(serverURL)
			conv, err := client.CreateConversation(args[0], newDomain)
			if err != nil {
				return err
			}
			fmt.Printf("Created conversation %s on server\n", conv.ID)
			return nil
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		conv, err := turn.NewConversation(args[0], newDomain)
		if err != nil {
			return err
		}
		if err := s.Save(conv); err != nil {
			return err
		}

		fmt.Printf("Created conversation %s\n", conv.ID)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newDomain, "domain", catalog.DomainAutomotive, "Tool domain for the conversation")
	newCmd.Flags().BoolVar(&newRemote, "remote", false, "Create on the server instead of the local store")
}
