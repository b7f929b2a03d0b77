package turn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func formatNames(formats []Format) []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = f.Name
	}
	return out
}

func TestCompatibleFormats_PlainSingleTurn(t *testing.T) {
	c := &Conversation{Turns: []*Turn{
		{Role: "system", Content: "eres un vendedor"},
		{Role: "user", Content: "hola"},
		{Role: "assistant", Content: "hola!"},
	}}

	assert.Equal(t, []string{"chatml", "alpaca", "sharegpt", "hermes"},
		formatNames(CompatibleFormats(c)))
}

func TestCompatibleFormats_MultiTurnExcludesSingleTurnOnly(t *testing.T) {
	c := &Conversation{Turns: []*Turn{
		{Role: "system"},
		{Role: "user"}, {Role: "assistant"},
		{Role: "user"}, {Role: "assistant"},
	}}

	assert.Equal(t, []string{"chatml", "sharegpt", "hermes"},
		formatNames(CompatibleFormats(c)))
}

func TestCompatibleFormats_ToolCallsRestrictToToolCapable(t *testing.T) {
	c := &Conversation{Turns: []*Turn{
		{Role: "system"},
		{Role: "user"},
		{Role: "vendedor", ToolCalls: []ToolCall{{ToolName: "search_inventory", CallID: "c1"}}},
		{Role: "user"}, {Role: "assistant"}, {Role: "user"},
	}}

	// Five non-system turns and one tool call: tool-capable, multi-eligible only.
	assert.Equal(t, []string{"chatml", "hermes"}, formatNames(CompatibleFormats(c)))
}

func TestIsMultiTurn_IgnoresSystemTurns(t *testing.T) {
	c := &Conversation{Turns: []*Turn{
		{Role: "sistema"}, {Role: "user"}, {Role: "assistant"},
	}}
	assert.False(t, c.IsMultiTurn())

	c.Turns = append(c.Turns, &Turn{Role: "user"})
	assert.True(t, c.IsMultiTurn())
}
