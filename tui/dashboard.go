// Package tui is the interactive curation dashboard: a conversation list, a
// turn view, and a content editor with tool-name autocompletion, all backed
// by the local working store.
package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/smerlos/convoset/catalog"
	"github.com/smerlos/convoset/editor"
	"github.com/smerlos/convoset/search"
	"github.com/smerlos/convoset/store"
	"github.com/smerlos/convoset/turn"
)

const (
	pageMain   = "main"
	pageNew    = "newConversation"
	pageDelete = "deleteConversation"

	buttonCancel = "Cancel"
	buttonDelete = "Delete"

	helpText = "F2: conversations, F3: turns, F4: editor, ctrl-s: search, n: new, d: delete, j/k: move, J/K: reorder, e: edit, v: toggle valid, ctrl-c: quit"
)

type dashboard struct {
	app   *tview.Application
	store *store.Store

	conversations []*turn.Conversation
	visible       []int // positions into conversations currently listed

	session      *editor.Session
	selectedTurn int

	list        *tview.List
	turnView    *tview.TextView
	editArea    *tview.TextArea
	completions *tview.TextView
	searchInput *tview.InputField
	pages       *tview.Pages
}

// Run starts the dashboard over an opened store and blocks until quit.
func Run(s *store.Store) error {
	d := &dashboard{
		app:          tview.NewApplication(),
		store:        s,
		selectedTurn: -1,
	}

	if err := d.reload(); err != nil {
		return err
	}

	d.list = tview.NewList()
	d.list.SetTitle("Conversations").SetBorder(true)

	d.turnView = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)
	d.turnView.SetTitle("Turns").SetBorder(true)

	d.editArea = tview.NewTextArea()
	d.editArea.SetTitle("Content").SetBorder(true)

	d.completions = tview.NewTextView().SetDynamicColors(true)

	d.searchInput = tview.NewInputField()
	d.searchInput.SetTitle("Search")
	d.searchInput.SetFieldWidth(50).
		SetAcceptanceFunc(tview.InputFieldMaxLength(50))
	d.searchInput.SetBorder(true)

	d.pages = tview.NewPages()

	d.populateList()
	d.wireList()
	d.wireTurnView()
	d.wireEditor()
	d.wireSearch()
	d.wireGlobalKeys()

	help := tview.NewTextView().SetDynamicColors(true)
	help.SetText(helpText).SetTextAlign(tview.AlignCenter)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
				AddItem(d.searchInput, 3, 1, false).
				AddItem(d.list, 0, 1, false), 0, 1, false).
			AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
				AddItem(d.turnView, 0, 2, false).
				AddItem(d.editArea, 0, 1, false).
				AddItem(d.completions, 1, 1, false), 0, 3, false), 0, 1, false).
		AddItem(help, 1, 1, false)

	d.pages.AddPage(pageMain, mainFlex, true, true)

	return d.app.SetRoot(d.pages, true).SetFocus(d.list).Run()
}

func (d *dashboard) reload() error {
	conversations, err := d.store.List()
	if err != nil {
		return err
	}
	d.conversations = conversations
	d.visible = make([]int, len(conversations))
	for i := range conversations {
		d.visible[i] = i
	}
	return nil
}

func (d *dashboard) populateList() {
	d.list.Clear()
	for _, pos := range d.visible {
		c := d.conversations[pos]
		secondary := fmt.Sprintf("%s, %d turns", c.Domain, len(c.Turns))
		d.list.AddItem(c.Title, secondary, rune(0), nil)
	}
	if d.list.GetItemCount() > 0 {
		d.openConversation(0)
	} else {
		d.session = nil
		d.turnView.SetText("")
	}
}

func (d *dashboard) current() *turn.Conversation {
	if d.session == nil {
		return nil
	}
	return d.session.Conversation()
}

func (d *dashboard) openConversation(listIndex int) {
	if listIndex < 0 || listIndex >= len(d.visible) {
		return
	}
	c := d.conversations[d.visible[listIndex]]
	d.session = editor.NewSession(c, catalog.ToolNames(c.Domain), d.store.Save)
	d.selectedTurn = 0
	if len(c.Turns) == 0 {
		d.selectedTurn = -1
	}
	d.renderTurns()
}

func (d *dashboard) wireList() {
	d.list.SetChangedFunc(func(index int, title, secondary string, shortcut rune) {
		d.openConversation(index)
	})
	d.list.SetSelectedFunc(func(index int, title, secondary string, shortcut rune) {
		d.openConversation(index)
		d.app.SetFocus(d.turnView)
	})
	d.list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyESC:
			d.app.SetFocus(d.searchInput)
			return nil
		}
		switch event.Rune() {
		case 'j':
			if d.list.GetCurrentItem() < d.list.GetItemCount()-1 {
				d.list.SetCurrentItem(d.list.GetCurrentItem() + 1)
			}
			return nil
		case 'k':
			if d.list.GetCurrentItem() > 0 {
				d.list.SetCurrentItem(d.list.GetCurrentItem() - 1)
			}
			return nil
		case 'n':
			d.showNewConversation()
			return nil
		case 'd':
			d.showDeleteConversation()
			return nil
		}
		return event
	})
}

func (d *dashboard) wireTurnView() {
	d.turnView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		c := d.current()
		if c == nil {
			return event
		}
		switch event.Key() {
		case tcell.KeyESC:
			d.app.SetFocus(d.list)
			return nil
		}
		switch event.Rune() {
		case 'j':
			if d.selectedTurn < len(c.Turns)-1 {
				d.selectedTurn++
				d.renderTurns()
			}
			return nil
		case 'k':
			if d.selectedTurn > 0 {
				d.selectedTurn--
				d.renderTurns()
			}
			return nil
		case 'J':
			d.moveSelected(d.selectedTurn + 1)
			return nil
		case 'K':
			d.moveSelected(d.selectedTurn - 1)
			return nil
		case 'e':
			d.beginEdit()
			return nil
		case 'v':
			if err := d.session.ToggleValid(d.selectedTurn); err == nil {
				d.renderTurns()
			}
			return nil
		}
		return event
	})
}

// moveSelected reorders the selected turn to target via the session so the
// renumbering invariant and persistence stay in one place.
func (d *dashboard) moveSelected(target int) {
	c := d.current()
	if c == nil || d.selectedTurn < 0 || target < 0 || target >= len(c.Turns) {
		return
	}
	if !d.session.BeginDrag(d.selectedTurn) {
		return
	}
	if err := d.session.Drop(target); err != nil {
		return
	}
	d.selectedTurn = target
	d.renderTurns()
}

func (d *dashboard) beginEdit() {
	if d.session == nil || !d.session.BeginEdit(d.selectedTurn) {
		return
	}
	buffer, caret := d.session.Buffer()
	d.editArea.SetText(buffer, false)
	d.editArea.Select(caret, caret)
	d.app.SetFocus(d.editArea)
}

func (d *dashboard) wireEditor() {
	d.editArea.SetChangedFunc(func() {
		if d.session == nil || !d.session.Editing() {
			return
		}
		_, caret, _ := d.editArea.GetSelection()
		d.session.SetBuffer(d.editArea.GetText(), caret)
		d.renderCompletions()
	})

	d.editArea.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if d.session == nil || !d.session.Editing() {
			return event
		}
		ac := d.session.Autocomplete()

		switch event.Key() {
		case tcell.KeyDown:
			if ac.Picking() {
				ac.MoveDown()
				d.renderCompletions()
				return nil
			}
		case tcell.KeyUp:
			if ac.Picking() {
				ac.MoveUp()
				d.renderCompletions()
				return nil
			}
		case tcell.KeyEnter, tcell.KeyTab:
			if ac.Picking() {
				d.confirmCompletion()
				return nil
			}
		case tcell.KeyESC:
			if ended := d.session.HandleEscape(); ended {
				d.editArea.SetText("", false)
				d.app.SetFocus(d.turnView)
			}
			d.renderCompletions()
			return nil
		case tcell.KeyCtrlS:
			if err := d.session.SaveEdit(); err == nil {
				d.editArea.SetText("", false)
				d.renderTurns()
				d.app.SetFocus(d.turnView)
			}
			d.renderCompletions()
			return nil
		}
		return event
	})
}

func (d *dashboard) confirmCompletion() {
	if !d.session.ConfirmCompletion() {
		return
	}
	buffer, caret := d.session.Buffer()
	d.editArea.SetText(buffer, false)
	d.editArea.Select(caret, caret)
	d.renderCompletions()
}

func (d *dashboard) renderCompletions() {
	ac := d.session.Autocomplete()
	if !ac.Picking() {
		d.completions.SetText("")
		return
	}
	highlighted, _ := ac.Highlighted()
	parts := make([]string, 0, 8)
	for _, candidate := range ac.Candidates() {
		if candidate == highlighted {
			parts = append(parts, fmt.Sprintf("[black:white]%s[-:-]", candidate))
		} else {
			parts = append(parts, candidate)
		}
	}
	d.completions.SetText(strings.Join(parts, "  "))
}

func (d *dashboard) wireSearch() {
	d.searchInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		query := d.searchInput.GetText()
		if query == "" {
			d.visible = make([]int, len(d.conversations))
			for i := range d.conversations {
				d.visible[i] = i
			}
		} else {
			idx := search.Build(d.conversations)
			d.visible = idx.Search(query)
		}
		d.populateList()
		if d.list.GetItemCount() > 0 {
			d.app.SetFocus(d.list)
		}
	})
}

func (d *dashboard) wireGlobalKeys() {
	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF2:
			d.app.SetFocus(d.list)
		case tcell.KeyF3:
			d.app.SetFocus(d.turnView)
		case tcell.KeyF4:
			if d.session != nil && d.session.Editing() {
				d.app.SetFocus(d.editArea)
			}
		case tcell.KeyCtrlS:
			// Save is handled inside the editor; elsewhere it means search.
			if d.app.GetFocus() != d.editArea {
				d.app.SetFocus(d.searchInput)
				return nil
			}
			return event
		default:
			return event
		}
		return nil
	})
}

func (d *dashboard) showNewConversation() {
	input := tview.NewInputField().
		SetLabel("Title: ").
		SetFieldWidth(40).
		SetAcceptanceFunc(tview.InputFieldMaxLength(40))
	input.SetBorder(true)
	input.SetDoneFunc(func(key tcell.Key) {
		defer func() {
			d.pages.RemovePage(pageNew)
			d.app.SetFocus(d.list)
		}()
		if key != tcell.KeyEnter {
			return
		}
		title := strings.TrimSpace(input.GetText())
		if title == "" {
			return
		}
		conv, err := turn.NewConversation(title, catalog.DomainAutomotive)
		if err != nil {
			return
		}
		if err := d.store.Save(conv); err != nil {
			return
		}
		if err := d.reload(); err != nil {
			return
		}
		d.populateList()
	})

	d.pages.AddPage(pageNew, centered(input, 3), true, true)
	d.app.SetFocus(input)
}

func (d *dashboard) showDeleteConversation() {
	index := d.list.GetCurrentItem()
	if index < 0 || index >= len(d.visible) {
		return
	}
	c := d.conversations[d.visible[index]]

	modal := tview.NewModal()
	modal.SetText(fmt.Sprintf("Are you sure you want to delete \"%s\"?", c.Title)).
		AddButtons([]string{buttonCancel, buttonDelete}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			d.pages.RemovePage(pageDelete)
			if buttonLabel == buttonDelete {
				if err := d.store.Delete(c.ID); err == nil {
					if err := d.reload(); err == nil {
						d.populateList()
					}
				}
			}
			d.app.SetFocus(d.list)
		})

	d.pages.AddPage(pageDelete, modal, true, true)
	d.app.SetFocus(modal)
}

// centered wraps a primitive in a fixed-height centered layout.
func centered(p tview.Primitive, height int) tview.Primitive {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(p, 44, 1, true).
			AddItem(nil, 0, 1, false), height, 1, true).
		AddItem(nil, 0, 1, false)
}

func (d *dashboard) renderTurns() {
	c := d.current()
	if c == nil {
		d.turnView.SetText("")
		return
	}
	d.turnView.SetText(renderConversation(c, d.selectedTurn))
}

var roleColors = map[turn.SemanticRole]string{
	turn.RoleSystem:    "gray",
	turn.RoleUser:      "red",
	turn.RoleAssistant: "green",
	turn.RoleTool:      "yellow",
}

// renderConversation formats the flattened display items with tview color
// tags. Tool calls and results are indented under their owning turn.
func renderConversation(c *turn.Conversation, selected int) string {
	var b strings.Builder
	for _, item := range turn.Flatten(c.Turns) {
		t := item.Turn
		switch item.Kind {
		case turn.ItemMessage:
			marker := "  "
			if t.Sequence-1 == selected {
				marker = "> "
			}
			validity := ""
			if !t.Valid {
				validity = " [red][invalid][-]"
			}
			color := roleColors[turn.Classify(t.Role)]
			fmt.Fprintf(&b, "%s[%s]%d. %s[-]%s\n", marker, color, t.Sequence, t.Role, validity)
			for _, segment := range turn.ParseContent(t.Content) {
				switch segment.Kind {
				case turn.SegmentToolBlock:
					fmt.Fprintf(&b, "   [yellow]tool_call[-] %s\n", segment.Text)
				default:
					fmt.Fprintf(&b, "   %s\n", segment.Text)
				}
			}
		case turn.ItemToolCall:
			call := t.ToolCalls[item.Index]
			fmt.Fprintf(&b, "   [yellow]→ %s[-] %s\n", call.ToolName, truncateID(call.CallID))
		case turn.ItemToolResult:
			result := t.ToolResults[item.Index]
			payload := result.Result.Text()
			if result.Result.IsObject() {
				payload = fmt.Sprintf("%v", result.Result.OfObject)
			}
			fmt.Fprintf(&b, "   [yellow]← %s[-] %s %s\n", result.ToolName, result.Status, payload)
		}
	}
	return b.String()
}

func truncateID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
