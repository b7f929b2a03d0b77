package turn

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

// Result statuses as stored on the wire
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusTimeout = "timeout"
)

// Conversation is an ordered sequence of turns curated for fine-tuning.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Domain    string    `json:"domain,omitempty"`
	Turns     []*Turn   `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Turn is one authored step of a conversation. Sequence numbers are 1-based
// and contiguous; Renumber restores the invariant after any structural edit.
type Turn struct {
	Sequence      int          `json:"sequence"`
	Role          string       `json:"role"`
	Content       string       `json:"content"`
	ToolCallsUsed []string     `json:"toolCallsUsed,omitempty"`
	ToolCalls     []ToolCall   `json:"toolCalls,omitempty"`
	ToolResults   []ToolResult `json:"toolResults,omitempty"`
	Valid         bool         `json:"valid"`
}

// UnmarshalJSON decodes a turn, treating an absent valid field as valid.
// Imported conversations that never went through curation must not arrive
// pre-rejected.
func (t *Turn) UnmarshalJSON(data []byte) error {
	type turnAlias Turn
	aux := struct {
		*turnAlias
		Valid *bool `json:"valid"`
	}{turnAlias: (*turnAlias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Valid = aux.Valid == nil || *aux.Valid
	return nil
}

// ToolCall records a structured tool invocation attached to a turn.
type ToolCall struct {
	ToolName  string         `json:"toolName"`
	CallID    string         `json:"callId"`
	Arguments map[string]any `json:"arguments"`
}

// ToolResult records the outcome of a tool call, correlated by CallID.
type ToolResult struct {
	ToolName   string        `json:"toolName"`
	CallID     string        `json:"callId"`
	Status     string        `json:"status"`
	Result     ResultPayload `json:"result"`
	DurationMS int64         `json:"durationMs,omitempty"`
}

// ResultPayload is a tagged union: a tool result is either raw text or a
// structured mapping. Exactly one variant is set.
type ResultPayload struct {
	OfText   *string
	OfObject map[string]any
}

func TextResult(text string) ResultPayload {
	return ResultPayload{OfText: &text}
}

func ObjectResult(fields map[string]any) ResultPayload {
	return ResultPayload{OfObject: fields}
}

// Text returns the text variant, or an empty string if this is an object result.
func (p ResultPayload) Text() string {
	if p.OfText != nil {
		return *p.OfText
	}
	return ""
}

func (p ResultPayload) IsObject() bool {
	return p.OfObject != nil
}

func (p ResultPayload) MarshalJSON() ([]byte, error) {
	if p.OfObject != nil {
		return json.Marshal(p.OfObject)
	}
	if p.OfText != nil {
		return json.Marshal(*p.OfText)
	}
	return json.Marshal("")
}

func (p *ResultPayload) UnmarshalJSON(data []byte) error {
	// Sniff the first token: objects become the structured variant,
	// everything else is kept as text.
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err == nil {
		p.OfObject = obj
		p.OfText = nil
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	p.OfText = &text
	p.OfObject = nil
	return nil
}

func NewConversation(title, domain string) (*Conversation, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Conversation{
		ID:        id.String(),
		Title:     title,
		Domain:    domain,
		Turns:     make([]*Turn, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Append adds a turn at the end of the conversation and assigns its sequence.
func (c *Conversation) Append(t Turn) {
	t.Sequence = len(c.Turns) + 1
	t.Valid = true
	c.Turns = append(c.Turns, &t)
	c.UpdatedAt = time.Now()
}

// HasToolCalls reports whether any turn carries at least one structured tool call.
func (c *Conversation) HasToolCalls() bool {
	for _, t := range c.Turns {
		if len(t.ToolCalls) > 0 {
			return true
		}
	}
	return false
}

// IsMultiTurn reports whether the conversation has more than two non-system turns.
func (c *Conversation) IsMultiTurn() bool {
	count := 0
	for _, t := range c.Turns {
		if Classify(t.Role) != RoleSystem {
			count++
		}
	}
	return count > 2
}

// PersistFunc writes the updated conversation back to whatever store owns it.
// The turn model never persists directly.
type PersistFunc func(*Conversation) error
