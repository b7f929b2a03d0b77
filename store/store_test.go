package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smerlos/convoset/turn"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "store_test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(tempDir)
	})

	s, err := Open(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestStore_SaveAndLoad(t *testing.T) {
	s := createTestStore(t)

	conv, err := turn.NewConversation("venta toyota", "automotive")
	if err != nil {
		t.Fatalf("NewConversation() failed: %v", err)
	}
	conv.Append(turn.Turn{Role: "user", Content: "hola"})
	conv.Append(turn.Turn{
		Role:    "vendedor",
		Content: "un momento",
		ToolCalls: []turn.ToolCall{
			{ToolName: "search_inventory", CallID: "call_1", Arguments: map[string]any{"brand": "toyota"}},
		},
		ToolResults: []turn.ToolResult{
			{ToolName: "search_inventory", CallID: "call_1", Status: turn.StatusSuccess, Result: turn.TextResult("2 matches")},
		},
	})

	if err := s.Save(conv); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := s.Load(conv.ID)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Title != "venta toyota" || loaded.Domain != "automotive" {
		t.Errorf("Metadata changed across round trip: %+v", loaded)
	}
	if len(loaded.Turns) != 2 {
		t.Fatalf("Expected 2 turns, got %d", len(loaded.Turns))
	}
	if loaded.Turns[1].ToolResults[0].Result.Text() != "2 matches" {
		t.Errorf("Tool result payload lost: %+v", loaded.Turns[1].ToolResults[0])
	}
	for i, tn := range loaded.Turns {
		if tn.Sequence != i+1 {
			t.Errorf("Expected sequence %d, got %d", i+1, tn.Sequence)
		}
	}
}

func TestStore_LoadMissing(t *testing.T) {
	s := createTestStore(t)

	_, err := s.Load("nope")
	if err != turn.ErrConversationNotFound {
		t.Errorf("Expected ErrConversationNotFound, got %v", err)
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := createTestStore(t)

	first, _ := turn.NewConversation("first", "")
	second, _ := turn.NewConversation("second", "")

	if err := s.Save(first); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if err := s.Save(second); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 conversations, got %d", len(list))
	}
	if list[0].Title != "second" || list[1].Title != "first" {
		t.Errorf("Expected newest first, got [%s %s]", list[0].Title, list[1].Title)
	}
}

func TestStore_Delete(t *testing.T) {
	s := createTestStore(t)

	conv, _ := turn.NewConversation("to delete", "")
	if err := s.Save(conv); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Delete(conv.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := s.Load(conv.ID); err != turn.ErrConversationNotFound {
		t.Errorf("Expected ErrConversationNotFound after delete, got %v", err)
	}
	if err := s.Delete(conv.ID); err != turn.ErrConversationNotFound {
		t.Errorf("Expected ErrConversationNotFound on double delete, got %v", err)
	}
}
