package turn

// Format is one named template format a conversation can be rendered into.
type Format struct {
	Name string
	// SingleTurnOnly formats cannot represent more than one exchange.
	SingleTurnOnly bool
	// ToolCapable formats can encode structured tool calls.
	ToolCapable bool
}

// Catalog order is declaration order; CompatibleFormats preserves it.
var Formats = []Format{
	{Name: "chatml", ToolCapable: true},
	{Name: "alpaca", SingleTurnOnly: true},
	{Name: "sharegpt"},
	{Name: "hermes", ToolCapable: true},
}

// CompatibleFormats returns the subset of the catalog able to represent the
// conversation, based on its structural features.
func CompatibleFormats(c *Conversation) []Format {
	hasToolCalls := c.HasToolCalls()
	isMultiTurn := c.IsMultiTurn()

	out := make([]Format, 0, len(Formats))
	for _, f := range Formats {
		if isMultiTurn && f.SingleTurnOnly {
			continue
		}
		if hasToolCalls && !f.ToolCapable {
			continue
		}
		out = append(out, f)
	}
	return out
}
