package editor

import (
	"github.com/smerlos/convoset/turn"
)

const noIndex = -1

// Session owns one conversation for the duration of an interactive edit. All
// transient state (buffer, caret, picker, drag source) lives here and is
// discarded on completion or cancellation; durable changes go through the
// persist callback.
type Session struct {
	conv    *turn.Conversation
	persist turn.PersistFunc

	ac      *Autocomplete
	editing int
	buffer  string
	caret   int

	dragSource int
}

func NewSession(conv *turn.Conversation, toolNames []string, persist turn.PersistFunc) *Session {
	return &Session{
		conv:       conv,
		persist:    persist,
		ac:         NewAutocomplete(toolNames),
		editing:    noIndex,
		dragSource: noIndex,
	}
}

func (s *Session) Conversation() *turn.Conversation {
	return s.conv
}

func (s *Session) Autocomplete() *Autocomplete {
	return s.ac
}

// BeginEdit loads a turn's content into the edit buffer.
func (s *Session) BeginEdit(index int) bool {
	if index < 0 || index >= len(s.conv.Turns) {
		return false
	}
	s.editing = index
	s.buffer = s.conv.Turns[index].Content
	s.caret = len(s.buffer)
	s.ac.Close()
	return true
}

func (s *Session) Editing() bool {
	return s.editing != noIndex
}

func (s *Session) Buffer() (string, int) {
	return s.buffer, s.caret
}

// SetBuffer records the latest buffer state and lets the picker react to it.
func (s *Session) SetBuffer(buffer string, caret int) {
	s.buffer = buffer
	s.caret = caret
	s.ac.Update(buffer, caret)
}

// ConfirmCompletion splices the highlighted tool snippet into the buffer.
func (s *Session) ConfirmCompletion() bool {
	ins, ok := s.ac.Confirm(s.caret)
	if !ok {
		return false
	}
	s.buffer, s.caret = Apply(s.buffer, ins)
	return true
}

// HandleEscape implements the keyboard contract: while picking, Escape only
// closes the picker; otherwise it cancels the edit session. Returns true when
// the edit session ended.
func (s *Session) HandleEscape() bool {
	if s.ac.Picking() {
		s.ac.Close()
		return false
	}
	s.CancelEdit()
	return true
}

// SaveEdit writes the buffer back into the edited turn and persists the
// conversation.
func (s *Session) SaveEdit() error {
	if s.editing == noIndex {
		return nil
	}
	s.conv.Turns[s.editing].Content = s.buffer
	s.resetEdit()
	return s.persist(s.conv)
}

// CancelEdit discards the buffer without touching the turn.
func (s *Session) CancelEdit() {
	s.resetEdit()
}

func (s *Session) resetEdit() {
	s.editing = noIndex
	s.buffer = ""
	s.caret = 0
	s.ac.Close()
}

// BeginDrag marks a turn as the drag source. Only main turns are draggable;
// tool items move implicitly with their owning turn.
func (s *Session) BeginDrag(index int) bool {
	if index < 0 || index >= len(s.conv.Turns) {
		return false
	}
	s.dragSource = index
	return true
}

func (s *Session) Dragging() bool {
	return s.dragSource != noIndex
}

// Drop reorders the dragged turn to the target index, renumbers, and
// persists. Dropping on the source index is a no-op.
func (s *Session) Drop(target int) error {
	src := s.dragSource
	s.dragSource = noIndex
	if src == noIndex || src == target || target < 0 || target >= len(s.conv.Turns) {
		return nil
	}
	s.conv.Turns = turn.Reorder(s.conv.Turns, src, target)
	return s.persist(s.conv)
}

// CancelDrag discards the drag source without side effects.
func (s *Session) CancelDrag() {
	s.dragSource = noIndex
}

// ToggleValid flips a turn's curation flag and persists.
func (s *Session) ToggleValid(index int) error {
	if index < 0 || index >= len(s.conv.Turns) {
		return nil
	}
	s.conv.Turns[index].Valid = !s.conv.Turns[index].Valid
	return s.persist(s.conv)
}
