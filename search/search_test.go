package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smerlos/convoset/turn"
)

func indexed() ([]*turn.Conversation, Index) {
	conversations := []*turn.Conversation{
		{Title: "buying a truck", Turns: []*turn.Turn{
			{Content: "I want a red pickup"},
		}},
		{Title: "warranty question", Turns: []*turn.Turn{
			{Content: "my truck broke down"},
		}},
		{Title: "test drives", Turns: []*turn.Turn{
			{Content: "scheduling for saturday"},
		}},
		{Title: "consulta de inventario", Turns: []*turn.Turn{
			{Content: "quiero buscar coches disponibles"},
		}},
	}
	return conversations, Build(conversations)
}

func TestSearch_TitleMatch(t *testing.T) {
	_, idx := indexed()
	assert.Equal(t, []int{1}, idx.Search("warranty"))
}

func TestSearch_ContentMatch(t *testing.T) {
	_, idx := indexed()
	assert.Equal(t, []int{0}, idx.Search("pickup"))
}

func TestSearch_StemmedMatch(t *testing.T) {
	_, idx := indexed()
	// "scheduling" was indexed; the stem matches "schedule".
	assert.Equal(t, []int{2}, idx.Search("schedule"))
}

func TestSearch_SpanishStemmedMatch(t *testing.T) {
	_, idx := indexed()
	// "buscar" was indexed; the Spanish stem matches "buscando".
	assert.Equal(t, []int{3}, idx.Search("buscando"))
	assert.Equal(t, []int{3}, idx.Search("coche"))
}

func TestSearch_SpanishStopWords(t *testing.T) {
	_, idx := indexed()
	assert.Equal(t, []int{3}, idx.Search("los coches disponibles"))
	assert.Nil(t, idx.Search("de"))
}

func TestSearch_MultiTermIntersection(t *testing.T) {
	_, idx := indexed()
	assert.Equal(t, []int{0, 1}, idx.Search("truck"))
	assert.Equal(t, []int{1}, idx.Search("truck broke"))
}

func TestSearch_NoMatch(t *testing.T) {
	_, idx := indexed()
	assert.Nil(t, idx.Search("submarine"))
}
