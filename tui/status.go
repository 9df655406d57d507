package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line showing
// the current scene, its exits, score, and move count.
func (m Model) renderStatusBar() string {
	st := m.engine.State()

	sceneName := st.CurrentSceneID()
	if sc, ok := st.Scene(sceneName); ok {
		sceneName = sc.Title
	}

	var dirs []string
	for _, exit := range m.engine.Scenes().AvailableExits(st.CurrentSceneID()) {
		dirs = append(dirs, exit.Direction)
	}
	exitStr := strings.Join(dirs, ",")
	if exitStr == "" {
		exitStr = "none"
	}

	left := fmt.Sprintf(" %s | Exits: %s", sceneName, exitStr)
	right := fmt.Sprintf("Score: %d | Moves: %d ", st.Score(), st.Moves())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
