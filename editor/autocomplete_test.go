package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTools = []string{"search_inventory", "quote_vehicle"}

// typeText simulates typing at the end of the buffer, updating the picker
// after every rune the way an editor change event would.
func typeText(a *Autocomplete, buffer, text string) (string, int) {
	for _, r := range text {
		buffer += string(r)
		a.Update(buffer, len(buffer))
	}
	return buffer, len(buffer)
}

func TestAutocomplete_OpensOnTrigger(t *testing.T) {
	a := NewAutocomplete(testTools)
	buffer, _ := typeText(a, "", "hola <")

	assert.True(t, a.Picking())
	assert.Equal(t, len(buffer)-1, a.TriggerOffset())
	assert.Equal(t, testTools, a.Candidates())
}

func TestAutocomplete_FilterNarrowsCandidates(t *testing.T) {
	a := NewAutocomplete(testTools)
	typeText(a, "", "<sea")

	assert.True(t, a.Picking())
	assert.Equal(t, "sea", a.Filter())
	assert.Equal(t, []string{"search_inventory"}, a.Candidates())
}

func TestAutocomplete_FilterIsCaseInsensitive(t *testing.T) {
	a := NewAutocomplete(testTools)
	typeText(a, "", "<SEA")

	assert.Equal(t, []string{"search_inventory"}, a.Candidates())
}

func TestAutocomplete_EmptyToolListNeverOpens(t *testing.T) {
	a := NewAutocomplete(nil)
	typeText(a, "", "<")
	assert.False(t, a.Picking())
}

func TestAutocomplete_DoesNotOpenInsideTag(t *testing.T) {
	a := NewAutocomplete(testTools)
	typeText(a, "", "<tool_call")
	a.Close()
	// A second trigger while the first tag is still open must not fire.
	buffer := "<tool_call"
	buffer, _ = typeText(a, buffer, "<")
	assert.False(t, a.Picking(), "buffer %q", buffer)
}

func TestAutocomplete_ReopensAfterClosedTag(t *testing.T) {
	a := NewAutocomplete(testTools)
	buffer := "<x> done "
	typeText(a, buffer, "<")
	assert.True(t, a.Picking())
}

func TestAutocomplete_SpaceAbandonsPicker(t *testing.T) {
	a := NewAutocomplete(testTools)
	typeText(a, "", "<sea rch")
	assert.False(t, a.Picking())
}

func TestAutocomplete_NewlineAbandonsPicker(t *testing.T) {
	a := NewAutocomplete(testTools)
	typeText(a, "", "<sea\n")
	assert.False(t, a.Picking())
}

func TestAutocomplete_CaretBeforeTriggerAbandons(t *testing.T) {
	a := NewAutocomplete(testTools)
	buffer, _ := typeText(a, "hey ", "<se")
	assert.True(t, a.Picking())

	a.Update(buffer, 2)
	assert.False(t, a.Picking())
}

func TestAutocomplete_ConfirmInsertsSnippet(t *testing.T) {
	a := NewAutocomplete(testTools)
	buffer, caret := typeText(a, "busco algo ", "<sea")

	ins, ok := a.Confirm(caret)
	assert.True(t, ok)
	assert.False(t, a.Picking())

	newBuffer, newCaret := Apply(buffer, ins)
	want := "busco algo <tool_call>\n{\"name\": \"search_inventory\", \"arguments\": {}}\n</tool_call>"
	assert.Equal(t, want, newBuffer)

	// Caret sits inside the empty arguments object.
	assert.Equal(t, byte('{'), newBuffer[newCaret-1])
	assert.Equal(t, byte('}'), newBuffer[newCaret])
	assert.True(t, strings.HasSuffix(newBuffer[:newCaret], `"arguments": {`))
}

func TestAutocomplete_ConfirmWithoutCandidatesFails(t *testing.T) {
	a := NewAutocomplete(testTools)
	_, caret := typeText(a, "", "<zzz")

	_, ok := a.Confirm(caret)
	assert.False(t, ok)
}

func TestAutocomplete_HighlightWrapsAround(t *testing.T) {
	a := NewAutocomplete(testTools)
	typeText(a, "", "<")

	name, _ := a.Highlighted()
	assert.Equal(t, "search_inventory", name)

	a.MoveDown()
	name, _ = a.Highlighted()
	assert.Equal(t, "quote_vehicle", name)

	a.MoveDown()
	name, _ = a.Highlighted()
	assert.Equal(t, "search_inventory", name)

	a.MoveUp()
	name, _ = a.Highlighted()
	assert.Equal(t, "quote_vehicle", name)
}

func TestAutocomplete_CandidateCap(t *testing.T) {
	tools := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		tools = append(tools, "tool_"+strings.Repeat("x", i+1))
	}
	a := NewAutocomplete(tools)
	typeText(a, "", "<")

	assert.Len(t, a.Candidates(), maxVisible)
	// Unfiltered order preserved.
	assert.Equal(t, tools[0], a.Candidates()[0])
}

func TestAutocomplete_UpdateIsIdempotent(t *testing.T) {
	a := NewAutocomplete(testTools)
	buffer, caret := typeText(a, "", "<quo")

	a.Update(buffer, caret)
	a.Update(buffer, caret)
	assert.True(t, a.Picking())
	assert.Equal(t, "quo", a.Filter())
	assert.Equal(t, []string{"quote_vehicle"}, a.Candidates())
}
