// Package stats derives curation metrics from conversations: turn counts by
// semantic role, tool activity, token footprint, and compatible template
// formats.
package stats

import (
	"github.com/pkoukk/tiktoken-go"

	"github.com/smerlos/convoset/turn"
)

const encodingName = "cl100k_base"

// Counter counts tokens with a tiktoken encoding when available and falls
// back to a rough four-characters-per-token estimate when the BPE data
// cannot be loaded (e.g. offline).
type Counter struct {
	enc *tiktoken.Tiktoken
}

func NewCounter() *Counter {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return &Counter{}
	}
	return &Counter{enc: enc}
}

func (c *Counter) Count(text string) int {
	if c.enc != nil {
		return len(c.enc.Encode(text, nil, nil))
	}
	return len(text) / 4
}

// Summary aggregates one conversation's curation metrics.
type Summary struct {
	Turns          int
	SystemTurns    int
	UserTurns      int
	AssistantTurns int
	ToolTurns      int
	ToolCalls      int
	ToolResults    int
	InvalidTurns   int
	Tokens         int
	Formats        []string
}

// Summarize computes the summary using the shared role classifier, so counts
// never drift from display classification.
func Summarize(c *turn.Conversation, counter *Counter) Summary {
	s := Summary{Turns: len(c.Turns)}
	for _, t := range c.Turns {
		switch turn.Classify(t.Role) {
		case turn.RoleSystem:
			s.SystemTurns++
		case turn.RoleAssistant:
			s.AssistantTurns++
		case turn.RoleTool:
			s.ToolTurns++
		default:
			s.UserTurns++
		}
		s.ToolCalls += len(t.ToolCalls)
		s.ToolResults += len(t.ToolResults)
		if !t.Valid {
			s.InvalidTurns++
		}
		s.Tokens += counter.Count(t.Content)
	}
	for _, f := range turn.CompatibleFormats(c) {
		s.Formats = append(s.Formats, f.Name)
	}
	return s
}
