// Package editor holds the transient interaction state of a conversation
// editing session: the tool-name autocomplete picker and the drag/edit state.
// Everything here is per-session and synchronous; nothing survives a completed
// or cancelled operation.
package editor

import (
	"fmt"
	"strings"
)

const (
	// TriggerChar opens the picker when typed.
	TriggerChar = '<'

	// maxVisible caps the candidate list shown on screen.
	maxVisible = 8
)

// snippetCaretBackoff positions the caret between the braces of the empty
// arguments object, counted back from the end of the inserted snippet.
const snippetCaretBackoff = len("}}\n</tool_call>")

type pickerState int

const (
	stateIdle pickerState = iota
	statePicking
)

// Autocomplete is the finite-state picker over an editable text buffer. It is
// pure state: callers feed it the current buffer and caret after every change
// and apply the Insertion it produces on confirm.
type Autocomplete struct {
	tools         []string
	state         pickerState
	triggerOffset int
	filter        string
	highlighted   int
}

// Insertion describes a buffer splice: replace [Start, End) with Text and
// move the caret to Caret.
type Insertion struct {
	Start int
	End   int
	Text  string
	Caret int
}

// NewAutocomplete builds a picker over the domain's ordered tool-name list.
// An empty list keeps the picker permanently idle.
func NewAutocomplete(tools []string) *Autocomplete {
	return &Autocomplete{tools: tools, state: stateIdle}
}

func (a *Autocomplete) Picking() bool {
	return a.state == statePicking
}

func (a *Autocomplete) Filter() string {
	return a.filter
}

func (a *Autocomplete) TriggerOffset() int {
	return a.triggerOffset
}

// Update recomputes the picker state from the current buffer and caret. It is
// idempotent: the outcome depends only on the arguments and the recorded
// trigger offset, never on the sequence of intermediate edits.
func (a *Autocomplete) Update(buffer string, caret int) {
	if caret < 0 {
		caret = 0
	}
	if caret > len(buffer) {
		caret = len(buffer)
	}

	if a.state == statePicking {
		if caret <= a.triggerOffset ||
			a.triggerOffset >= len(buffer) ||
			buffer[a.triggerOffset] != TriggerChar {
			a.Close()
		} else {
			filter := buffer[a.triggerOffset+1 : caret]
			if strings.ContainsAny(filter, " \n") {
				a.Close()
				return
			}
			a.filter = filter
			if a.highlighted >= len(a.Candidates()) {
				a.highlighted = 0
			}
			return
		}
	}

	if len(a.tools) == 0 {
		return
	}
	if caret == 0 || buffer[caret-1] != TriggerChar {
		return
	}
	// Heuristic for "not already inside a tag": before the trigger, every
	// open marker must have a matching close marker.
	prefix := buffer[:caret-1]
	if strings.Count(prefix, "<") > strings.Count(prefix, ">") {
		return
	}

	a.state = statePicking
	a.triggerOffset = caret - 1
	a.filter = ""
	a.highlighted = 0
}

// Candidates returns the tool names matching the current filter,
// case-insensitively, in catalog order, capped for display.
func (a *Autocomplete) Candidates() []string {
	if a.state != statePicking {
		return nil
	}
	needle := strings.ToLower(a.filter)
	out := make([]string, 0, maxVisible)
	for _, tool := range a.tools {
		if needle != "" && !strings.Contains(strings.ToLower(tool), needle) {
			continue
		}
		out = append(out, tool)
		if len(out) == maxVisible {
			break
		}
	}
	return out
}

// Highlighted returns the currently highlighted candidate.
func (a *Autocomplete) Highlighted() (string, bool) {
	candidates := a.Candidates()
	if len(candidates) == 0 {
		return "", false
	}
	if a.highlighted >= len(candidates) {
		return candidates[0], true
	}
	return candidates[a.highlighted], true
}

// MoveDown advances the highlight with wraparound.
func (a *Autocomplete) MoveDown() {
	n := len(a.Candidates())
	if n == 0 {
		return
	}
	a.highlighted = (a.highlighted + 1) % n
}

// MoveUp retreats the highlight with wraparound.
func (a *Autocomplete) MoveUp() {
	n := len(a.Candidates())
	if n == 0 {
		return
	}
	a.highlighted = (a.highlighted - 1 + n) % n
}

// Confirm resolves the highlighted candidate into a snippet insertion
// replacing the buffer range [trigger offset, caret) and closes the picker.
func (a *Autocomplete) Confirm(caret int) (Insertion, bool) {
	name, ok := a.Highlighted()
	if !ok {
		return Insertion{}, false
	}

	snippet := fmt.Sprintf("<tool_call>\n{\"name\": %q, \"arguments\": {}}\n</tool_call>", name)
	ins := Insertion{
		Start: a.triggerOffset,
		End:   caret,
		Text:  snippet,
		Caret: a.triggerOffset + len(snippet) - snippetCaretBackoff,
	}
	a.Close()
	return ins, true
}

// Close abandons the picker without touching the buffer.
func (a *Autocomplete) Close() {
	a.state = stateIdle
	a.triggerOffset = 0
	a.filter = ""
	a.highlighted = 0
}

// Apply splices an insertion into a buffer and returns the new buffer and
// caret position.
func Apply(buffer string, ins Insertion) (string, int) {
	start, end := ins.Start, ins.End
	if start < 0 {
		start = 0
	}
	if end > len(buffer) {
		end = len(buffer)
	}
	return buffer[:start] + ins.Text + buffer[end:], ins.Caret
}
