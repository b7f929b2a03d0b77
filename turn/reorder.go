package turn

// Reorder moves the turn at src to dst with splice semantics (remove then
// reinsert, not swap) and renumbers the result. Equal or out-of-range indices
// are a no-op. Only whole turns move; tool calls and results travel with
// their owning turn.
func Reorder(turns []*Turn, src, dst int) []*Turn {
	if src == dst || src < 0 || dst < 0 || src >= len(turns) || dst >= len(turns) {
		return turns
	}

	out := make([]*Turn, 0, len(turns))
	out = append(out, turns[:src]...)
	out = append(out, turns[src+1:]...)

	moved := turns[src]
	out = append(out[:dst], append([]*Turn{moved}, out[dst:]...)...)

	Renumber(out)
	return out
}

// Renumber rewrites every turn's sequence to its 1-based position. Sequences
// must be contiguous and strictly increasing after any mutation that touches
// ordering.
func Renumber(turns []*Turn) {
	for i, t := range turns {
		t.Sequence = i + 1
	}
}
