package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smerlos/convoset/turn"
	"github.com/smerlos/convoset/utils"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a conversation's turns",
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

		fmt.Printf("%s (%s)\n\n", conv.Title, conv.Domain)
		for _, item := range turn.Flatten(conv.Turns) {
			fmt.Print(renderItem(item))
		}
		return nil
	},
}

func renderItem(item turn.DisplayItem) string {
	t := item.Turn
	switch item.Kind {
	case turn.ItemMessage:
		title := fmt.Sprintf("%d. %s", t.Sequence, t.Role)
		if !t.Valid {
			title += " [invalid]"
		}
		var lines []string
		for _, segment := range turn.ParseContent(t.Content) {
			if segment.Kind == turn.SegmentToolBlock {
				lines = append(lines, "tool_call: "+segment.Text)
			} else {
				lines = append(lines, segment.Text)
			}
		}
		return utils.RenderBox(title, lines) + "\n"
	case turn.ItemToolCall:
		call := t.ToolCalls[item.Index]
		arguments, _ := json.Marshal(call.Arguments)
		return fmt.Sprintf("  → %s (%s) %s\n", call.ToolName, call.CallID, arguments)
	case turn.ItemToolResult:
		result := t.ToolResults[item.Index]
		payload, _ := json.Marshal(result.Result)
		return fmt.Sprintf("  ← %s (%s) %s %s\n", result.ToolName, result.CallID, result.Status, payload)
	}
	return ""
}
