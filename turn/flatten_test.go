package turn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTurns() []*Turn {
	return []*Turn{
		{Sequence: 1, Role: "user", Content: "quiero un auto"},
		{
			Sequence: 2,
			Role:     "vendedor",
			Content:  "dame un momento",
			ToolCalls: []ToolCall{
				{ToolName: "search_inventory", CallID: "call_1", Arguments: map[string]any{"brand": "toyota"}},
				{ToolName: "quote_vehicle", CallID: "call_2", Arguments: map[string]any{}},
			},
			ToolResults: []ToolResult{
				{ToolName: "search_inventory", CallID: "call_1", Status: StatusSuccess, Result: TextResult("3 matches")},
			},
		},
		{Sequence: 3, Role: "user", Content: "gracias"},
	}
}

func TestFlatten_OrderWithinTurn(t *testing.T) {
	items := Flatten(sampleTurns())

	// turns + tool calls + tool results
	assert.Len(t, items, 3+2+1)

	kinds := make([]ItemKind, len(items))
	for i, item := range items {
		kinds[i] = item.Kind
	}
	assert.Equal(t, []ItemKind{
		ItemMessage,
		ItemMessage, ItemToolCall, ItemToolCall, ItemToolResult,
		ItemMessage,
	}, kinds)
}

func TestFlatten_PreservesTurnOrder(t *testing.T) {
	turns := sampleTurns()
	items := Flatten(turns)

	assert.Same(t, turns[0], items[0].Turn)
	assert.Same(t, turns[1], items[1].Turn)
	assert.Same(t, turns[1], items[4].Turn)
	assert.Same(t, turns[2], items[5].Turn)
}

func TestFlatten_ToolIndices(t *testing.T) {
	items := Flatten(sampleTurns())

	assert.Equal(t, 0, items[2].Index)
	assert.Equal(t, 1, items[3].Index)
	assert.Equal(t, 0, items[4].Index)
}

func TestDisplayItem_KeyIsDeterministic(t *testing.T) {
	items := Flatten(sampleTurns())
	again := Flatten(sampleTurns())

	seen := map[string]struct{}{}
	for i, item := range items {
		assert.Equal(t, item.Key(), again[i].Key())
		_, dup := seen[item.Key()]
		assert.False(t, dup, "duplicate key %s", item.Key())
		seen[item.Key()] = struct{}{}
	}
	assert.Equal(t, "2:tool-call:1", items[3].Key())
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
}
