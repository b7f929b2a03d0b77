package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/api"
	"github.com/smerlos/convoset/utils"
)

var listRemote bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listRemote {
			return listRemoteConversations()
		}
		return listLocalConversations()
	},
}

func init() {
	listCmd.Flags().BoolVar(&listRemote, "remote", false, "List conversations on the server instead of the local store")
}

func listLocalConversations() error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	conversations, err := s.List()
	if err != nil {
		return err
	}
	if len(conversations) == 0 {
		fmt.Println("No conversations found.")
		return nil
	}

	rows := make([][]string, 0, len(conversations))
	for _, c := range conversations {
		rows = append(rows, []string{
			c.ID,
			c.Title,
			c.Domain,
			strconv.Itoa(len(c.Turns)),
			c.UpdatedAt.Format(time.RFC3339),
		})
	}
	utils.RenderTable([]string{"ID", "Title", "Domain", "Turns", "Updated"}, rows)
	return nil
}

func listRemoteConversations() error {
	client := api.NewClient(serverURL)

	conversations, err := client.ListConversations()
	if err != nil {
		return err
	}
	if len(conversations) == 0 {
		fmt.Println("No conversations found.")
		return nil
	}

	rows := make([][]string, 0, len(conversations))
	for _, meta := range conversations {
		rows = append(rows, []string{
			meta.ID,
			meta.Title,
			meta.Domain,
			strconv.Itoa(meta.TurnCount),
			meta.UpdatedAt.Format(time.RFC3339),
		})
	}
	utils.RenderTable([]string{"ID", "Title", "Domain", "Turns", "Updated"}, rows)
	return nil
}
