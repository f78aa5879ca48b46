package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/witchertrack/engine"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"INVALID", kindError},
		{"[trace] potion_brewed amount=1 name=Swallow total=1", kindTrace},
		{"closest form: Geralt brews <potion>", kindHint},
		{"Alchemy ingredients obtained", kindSuccess},
		{"Geralt defeats Harpy", kindSuccess},
		{"New bestiary entry added: Harpy", kindSuccess},
		{"Not enough trophies", kindNoop},
		{"No formula for Swallow", kindNoop},
		{"Already known formula", kindNoop},
		{"Geralt is unprepared and barely escapes with his life", kindNoop},
		{"2 Rebis, 1 Vitriol", kindResponse},
		{"None", kindResponse},
		{"", kindResponse},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("Geralt loots 1 Rebis")
	h.Push("Total ingredient ?")
	h.Push("Geralt brews Swallow")

	for _, want := range []string{"Geralt brews Swallow", "Total ingredient ?", "Geralt loots 1 Rebis"} {
		prev, ok := h.Prev("")
		if !ok || prev != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, prev, ok)
		}
	}

	// At oldest, stays there.
	prev, ok := h.Prev("")
	if !ok || prev != "Geralt loots 1 Rebis" {
		t.Errorf("expected oldest entry at boundary, got %q (ok=%v)", prev, ok)
	}
}

func TestHistory_NextRestoresDraft(t *testing.T) {
	h := NewHistory(5)
	h.Push("Total potion ?")
	h.Push("Total trophy ?")

	h.Prev("Geralt enc") // "Total trophy ?"
	h.Prev("ignored")    // "Total potion ?"

	next, ok := h.Next()
	if !ok || next != "Total trophy ?" {
		t.Errorf("expected 'Total trophy ?', got %q (ok=%v)", next, ok)
	}

	next, ok = h.Next()
	if !ok || next != "Geralt enc" {
		t.Errorf("expected the draft back, got %q (ok=%v)", next, ok)
	}

	if _, ok := h.Next(); ok {
		t.Error("expected false once navigation has ended")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev("x"); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
}

func TestHistory_Limit(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}
	prev, _ := h.Prev("")
	if prev != "c" {
		t.Errorf("expected 'c', got %q", prev)
	}
	prev, _ = h.Prev("")
	if prev != "b" {
		t.Errorf("expected 'b', got %q", prev)
	}
	prev, _ = h.Prev("")
	if prev != "b" {
		t.Errorf("expected 'b' at boundary, got %q", prev)
	}
}

func TestHistory_SkipsDuplicatesAndEmpty(t *testing.T) {
	h := NewHistory(5)
	h.Push("Exit")
	h.Push("Exit")
	h.Push("")

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

func TestHandleMeta_Quit(t *testing.T) {
	m := New(engine.New(nil))

	for _, cmd := range []string{"/quit", "/exit"} {
		if _, quit := m.handleMeta(cmd); !quit {
			t.Errorf("expected quit=true for %s", cmd)
		}
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := New(engine.New(nil))

	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("help should not quit")
	}

	joined := strings.Join(output, "\n")
	for _, expected := range []string{"/quit", "/state", "/trace", "Geralt loots", "What is in"} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %q in help output", expected)
		}
	}
}

func TestHandleMeta_Trace(t *testing.T) {
	m := New(engine.New(nil))

	output, _ := m.handleMeta("/trace")
	if !m.trace {
		t.Error("expected trace to be enabled")
	}
	if len(output) == 0 || !strings.Contains(output[0], "enabled") {
		t.Errorf("expected enabled message, got %v", output)
	}

	output, _ = m.handleMeta("/trace")
	if m.trace {
		t.Error("expected trace to be disabled")
	}
	if len(output) == 0 || !strings.Contains(output[0], "disabled") {
		t.Errorf("expected disabled message, got %v", output)
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := New(engine.New(nil))

	output, quit := m.handleMeta("/save")
	if quit {
		t.Error("unknown command should not quit")
	}
	if len(output) == 0 || !strings.Contains(output[0], "Unknown command") {
		t.Errorf("expected unknown command message, got %v", output)
	}
}

func TestHandleMeta_State(t *testing.T) {
	eng := engine.New(nil)
	eng.Step("Geralt loots 2 Rebis")
	m := New(eng)

	output, quit := m.handleMeta("/state")
	if quit {
		t.Error("state should not quit")
	}

	joined := strings.Join(output, "\n")
	for _, expected := range []string{`"turn": 1`, `"name": "Rebis"`, `"quantity": 2`} {
		if !strings.Contains(joined, expected) {
			t.Errorf("expected %s in state output:\n%s", expected, joined)
		}
	}
}

func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.handleEnter()
	return next.(Model), cmd
}

func lastLines(m Model, n int) []string {
	var out []string
	for _, rl := range m.rawLines[len(m.rawLines)-n:] {
		out = append(out, rl.text)
	}
	return out
}

func TestHandleEnter_Step(t *testing.T) {
	m := New(engine.New(nil))

	m, _ = submit(t, m, "Geralt loots 3 Rebis")
	got := lastLines(m, 2)
	if got[0] != ">> Geralt loots 3 Rebis" || got[1] != "Alchemy ingredients obtained" {
		t.Errorf("unexpected scrollback %q", got)
	}
	if m.history.Len() != 1 {
		t.Errorf("expected the line in history, got %d entries", m.history.Len())
	}
}

func TestHandleEnter_InvalidShowsHint(t *testing.T) {
	m := New(engine.New(nil))

	m, _ = submit(t, m, "Geralt brew Swallow")
	got := lastLines(m, 2)
	if got[0] != "INVALID" {
		t.Errorf("expected INVALID, got %q", got[0])
	}
	if got[1] != "closest form: Geralt brews <potion>" {
		t.Errorf("expected a hint, got %q", got[1])
	}
}

func TestHandleEnter_TraceLines(t *testing.T) {
	m := New(engine.New(nil))
	m.trace = true

	m, _ = submit(t, m, "Geralt loots 1 Rebis")
	got := lastLines(m, 1)
	if !strings.HasPrefix(got[0], "[trace] ingredient_gained") {
		t.Errorf("expected a trace line, got %q", got[0])
	}
}

func TestHandleEnter_ExitQuits(t *testing.T) {
	m := New(engine.New(nil))

	m, cmd := submit(t, m, "Exit")
	if !m.quitting || cmd == nil {
		t.Error("expected Exit to quit")
	}
}

func TestStatusBar(t *testing.T) {
	eng := engine.New(nil)
	eng.Step("Geralt loots 3 Rebis, 2 Vitriol")
	eng.Step("Geralt learns Igni sign is effective against Harpy")
	m := New(eng)
	m.width = 100

	bar := m.renderStatusBar()
	for _, expected := range []string{"Ingredients: 5", "Potions: 0", "Trophies: 0", "Beasts: 1", "T:2"} {
		if !strings.Contains(bar, expected) {
			t.Errorf("expected %q in status bar %q", expected, bar)
		}
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := New(engine.New(nil), "Kaer Morhen lore loaded")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if !m.ready {
		t.Fatal("expected model ready after window size")
	}

	next, _ = m.Update(m.initialOutput()())
	m = next.(Model)
	if !strings.Contains(m.View(), "Kaer Morhen lore loaded") {
		t.Errorf("expected banner in view:\n%s", m.View())
	}
}
