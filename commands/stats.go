package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/stats"
	"github.com/smerlos/convoset/utils"
)

var statsCmd = &cobra.Command{
	Use:   "stats [id]",
	Short: "Show curation metrics for a conversation",
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

		summary := stats.Summarize(conv, stats.NewCounter())

		fmt.Printf("%s (%s)\n", conv.Title, conv.Domain)
		utils.RenderTable([]string{"Metric", "Value"}, [][]string{
			{"Turns", strconv.Itoa(summary.Turns)},
			{"System turns", strconv.Itoa(summary.SystemTurns)},
			{"User turns", strconv.Itoa(summary.UserTurns)},
			{"Assistant turns", strconv.Itoa(summary.AssistantTurns)},
			{"Tool turns", strconv.Itoa(summary.ToolTurns)},
			{"Tool calls", strconv.Itoa(summary.ToolCalls)},
			{"Tool results", strconv.Itoa(summary.ToolResults)},
			{"Invalid turns", strconv.Itoa(summary.InvalidTurns)},
			{"Tokens", strconv.Itoa(summary.Tokens)},
			{"Formats", strings.Join(summary.Formats, ", ")},
		})
		return nil
	},
}
