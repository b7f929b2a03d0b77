package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smerlos/convoset/turn"
)

func testConversation(t *testing.T) *turn.Conversation {
	t.Helper()
	conv, err := turn.NewConversation("venta kia", "automotive")
	require.NoError(t, err)
	conv.Append(turn.Turn{Role: "user", Content: "hola"})
	conv.Append(turn.Turn{Role: "vendedor", Content: "bienvenido"})
	conv.Append(turn.Turn{Role: "user", Content: "busco un suv"})
	return conv
}

func TestSession_SaveEditPersists(t *testing.T) {
	conv := testConversation(t)
	persisted := 0
	s := NewSession(conv, testTools, func(c *turn.Conversation) error {
		persisted++
		return nil
	})

	require.True(t, s.BeginEdit(1))
	s.SetBuffer("bienvenido, dame un momento", len("bienvenido, dame un momento"))
	require.NoError(t, s.SaveEdit())

	assert.Equal(t, "bienvenido, dame un momento", conv.Turns[1].Content)
	assert.Equal(t, 1, persisted)
	assert.False(t, s.Editing())
}

func TestSession_CancelDiscardsBuffer(t *testing.T) {
	conv := testConversation(t)
	s := NewSession(conv, testTools, func(*turn.Conversation) error { return nil })

	require.True(t, s.BeginEdit(0))
	s.SetBuffer("scratch", 7)
	s.CancelEdit()

	assert.Equal(t, "hola", conv.Turns[0].Content)
	assert.False(t, s.Editing())
	buffer, caret := s.Buffer()
	assert.Empty(t, buffer)
	assert.Zero(t, caret)
}

func TestSession_EscapeClosesPickerFirst(t *testing.T) {
	conv := testConversation(t)
	s := NewSession(conv, testTools, func(*turn.Conversation) error { return nil })

	require.True(t, s.BeginEdit(0))
	s.SetBuffer("hola <", 6)
	require.True(t, s.Autocomplete().Picking())

	// First Escape only closes the picker.
	assert.False(t, s.HandleEscape())
	assert.False(t, s.Autocomplete().Picking())
	assert.True(t, s.Editing())

	// Second Escape cancels the session.
	assert.True(t, s.HandleEscape())
	assert.False(t, s.Editing())
}

func TestSession_ConfirmCompletionSplicesBuffer(t *testing.T) {
	conv := testConversation(t)
	s := NewSession(conv, testTools, func(*turn.Conversation) error { return nil })

	require.True(t, s.BeginEdit(1))
	s.SetBuffer("bienvenido <", len("bienvenido <"))
	require.True(t, s.Autocomplete().Picking())
	s.SetBuffer("bienvenido <quo", len("bienvenido <quo"))
	require.True(t, s.Autocomplete().Picking())

	require.True(t, s.ConfirmCompletion())
	buffer, caret := s.Buffer()
	assert.Contains(t, buffer, `<tool_call>`)
	assert.Contains(t, buffer, `"name": "quote_vehicle"`)
	assert.Equal(t, byte('{'), buffer[caret-1])

	// The turn itself is untouched until save.
	assert.Equal(t, "bienvenido", conv.Turns[1].Content)
}

func TestSession_DropReordersAndPersists(t *testing.T) {
	conv := testConversation(t)
	persisted := 0
	s := NewSession(conv, testTools, func(*turn.Conversation) error {
		persisted++
		return nil
	})

	require.True(t, s.BeginDrag(0))
	require.NoError(t, s.Drop(2))

	assert.Equal(t, []string{"bienvenido", "busco un suv", "hola"}, contents(conv))
	for i, tn := range conv.Turns {
		assert.Equal(t, i+1, tn.Sequence)
	}
	assert.Equal(t, 1, persisted)
	assert.False(t, s.Dragging())
}

func TestSession_DropOnSourceIsNoop(t *testing.T) {
	conv := testConversation(t)
	persisted := 0
	s := NewSession(conv, testTools, func(*turn.Conversation) error {
		persisted++
		return nil
	})

	require.True(t, s.BeginDrag(1))
	require.NoError(t, s.Drop(1))

	assert.Equal(t, []string{"hola", "bienvenido", "busco un suv"}, contents(conv))
	assert.Zero(t, persisted)
}

func TestSession_CancelDragLeavesDataAlone(t *testing.T) {
	conv := testConversation(t)
	s := NewSession(conv, testTools, func(*turn.Conversation) error { return nil })

	require.True(t, s.BeginDrag(2))
	s.CancelDrag()
	assert.False(t, s.Dragging())
	assert.Equal(t, []string{"hola", "bienvenido", "busco un suv"}, contents(conv))
}

func TestSession_ToggleValidPersists(t *testing.T) {
	conv := testConversation(t)
	persisted := 0
	s := NewSession(conv, testTools, func(*turn.Conversation) error {
		persisted++
		return nil
	})

	require.NoError(t, s.ToggleValid(1))
	assert.False(t, conv.Turns[1].Valid)
	require.NoError(t, s.ToggleValid(1))
	assert.True(t, conv.Turns[1].Valid)
	assert.Equal(t, 2, persisted)
}

func contents(c *turn.Conversation) []string {
	out := make([]string, len(c.Turns))
	for i, tn := range c.Turns {
		out[i] = tn.Content
	}
	return out
}
