package turn

import "fmt"

// ItemKind distinguishes the three kinds of renderable items a turn expands into.
type ItemKind string

const (
	ItemMessage    ItemKind = "message"
	ItemToolCall   ItemKind = "tool-call"
	ItemToolResult ItemKind = "tool-result"
)

// DisplayItem is a derived, render-only projection of a turn or one of its
// nested tool calls/results. It is rebuilt on every render and never mutated.
type DisplayItem struct {
	Kind ItemKind
	Turn *Turn
	// Index into the owning turn's ToolCalls or ToolResults list.
	// Zero for message items.
	Index int
}

// Key returns a deterministic identity for the item so UI state survives
// re-renders without loss or duplication.
func (d DisplayItem) Key() string {
	return fmt.Sprintf("%d:%s:%d", d.Turn.Sequence, d.Kind, d.Index)
}

// Flatten expands turns into a single ordered list of display items. Within a
// turn the order is fixed: the message first, then tool calls in list order,
// then tool results in list order. A tool call always follows the message
// that triggered it regardless of role classification.
func Flatten(turns []*Turn) []DisplayItem {
	items := make([]DisplayItem, 0, len(turns))
	for _, t := range turns {
		items = append(items, DisplayItem{Kind: ItemMessage, Turn: t})
		for i := range t.ToolCalls {
			items = append(items, DisplayItem{Kind: ItemToolCall, Turn: t, Index: i})
		}
		for i := range t.ToolResults {
			items = append(items, DisplayItem{Kind: ItemToolResult, Turn: t, Index: i})
		}
	}
	return items
}
