package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

// renderStatusBar produces a full-width inverted status line showing
// stock totals, bestiary size and turn count.
func (m Model) renderStatusBar() string {
	w := m.engine.World

	left := fmt.Sprintf(" Ingredients: %d | Potions: %d | Trophies: %d",
		state.Units(w, types.CategoryIngredient),
		state.Units(w, types.CategoryPotion),
		state.Units(w, types.CategoryTrophy),
	)
	right := fmt.Sprintf("Beasts: %d | T:%d ", len(w.Beasts), w.Turn)
	if m.trace {
		right = "trace | " + right
	}

	// Drop the bestiary count before letting the bar overflow.
	if lipgloss.Width(left)+lipgloss.Width(right) > m.width {
		right = fmt.Sprintf("T:%d ", w.Turn)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
