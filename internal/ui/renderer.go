package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mathwars/internal/match"
)

const (
	hpBarWidth   = 20
	fuseBarWidth = 40
)

// MenuItem is one selectable line of the setup menu.
type MenuItem struct {
	Key   rune
	Label string
	Color tcell.Color
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the screen for the match's current phase.
func (r *Renderer) Render(m *match.Match, menu []MenuItem) {
	r.screen.Clear()

	switch m.Phase() {
	case match.PhaseSetup:
		r.renderSetup(menu)
	case match.PhaseInterstitial:
		r.renderScoreboard(m)
		r.renderInterstitial(m)
	case match.PhaseActive:
		r.renderScoreboard(m)
		r.renderTurn(m)
	case match.PhaseGameOver:
		r.renderScoreboard(m)
		r.renderGameOver(m)
	default:
		r.renderScoreboard(m)
	}

	r.screen.Show()
}

func (r *Renderer) renderSetup(menu []MenuItem) {
	title := tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	r.screen.DrawText(2, 1, "Math Wars: Siege of Numbers", title)

	for i, item := range menu {
		x := r.screen.DrawText(4, 3+i, fmt.Sprintf("[%c] ", item.Key), tcell.StyleDefault)
		r.screen.DrawText(x, 3+i, item.Label, tcell.StyleDefault.Foreground(item.Color))
	}

	r.RenderMessage("Press a number to start, Esc to quit", 4+len(menu))
}

// renderScoreboard draws one health bar per player on the top rows,
// highlighting the acting player.
func (r *Renderer) renderScoreboard(m *match.Match) {
	tuning := m.Tuning()
	x := r.screen.DrawText(2, 0, fmt.Sprintf("Round %d  ", m.Round()), tcell.StyleDefault)
	r.screen.DrawText(x, 0, tuning.Name, tcell.StyleDefault.Foreground(tuning.TCellColor()))

	for i, p := range m.Players() {
		style := tcell.StyleDefault
		if i == m.CurrentTurnIndex() {
			style = style.Foreground(tcell.ColorYellow).Bold(true)
		}
		y := 1 + i
		x := r.screen.DrawText(2, y, fmt.Sprintf("%-9s", p.Name), style)
		x = r.drawBar(x+1, y, hpBarWidth, float64(p.Health)/float64(p.MaxHealth), healthColor(p))
		r.screen.DrawText(x+1, y, fmt.Sprintf("%4d/%d", p.Health, p.MaxHealth), style)
	}
}

func (r *Renderer) renderInterstitial(m *match.Match) {
	r.screen.DrawText(4, 5, "Pass device to", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.DrawText(4, 6, m.CurrentPlayer().Name, tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true))
	r.RenderMessage("READY? Press Enter", 8)
}

func (r *Renderer) renderTurn(m *match.Match) {
	if p, ok := m.CurrentProblem(); ok {
		r.screen.DrawText(4, 5, p.Question+" = ?", tcell.StyleDefault.Bold(true))
	}

	input := m.CurrentInput() + strings.Repeat("_", match.MaxInputLength-len(m.CurrentInput()))
	r.screen.DrawText(4, 7, "> "+input, tcell.StyleDefault.Foreground(tcell.ColorAqua))

	left := m.TimeRemaining()
	x := r.drawBar(4, 9, fuseBarWidth, left/match.TurnDuration, fuseColor(left))
	r.screen.DrawText(x+1, 9, fmt.Sprintf("%4.1fs", left), tcell.StyleDefault)

	if fb := m.Feedback(); fb != "" {
		r.screen.DrawText(4, 11, fb, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
	r.RenderMessage("Digits to type, Backspace to erase, Enter to submit", 13)
}

func (r *Renderer) renderGameOver(m *match.Match) {
	banner := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.screen.DrawText(4, 5, m.Feedback(), banner)

	if winner, ok := m.Winner(); ok {
		r.screen.DrawText(4, 6, winner.Name+" wins!", tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true))
	} else {
		r.screen.DrawText(4, 6, "Defeated", banner)
	}
	r.RenderMessage("Press Enter to return to the menu", 8)
}

// drawBar fills width cells, the first fraction of them in color.
// Returns the column after the bar.
func (r *Renderer) drawBar(x, y, width int, fraction float64, color tcell.Color) int {
	filled := int(fraction*float64(width) + 0.5)
	filled = max(0, min(filled, width))
	for i := 0; i < width; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, '█', tcell.StyleDefault.Foreground(color))
		} else {
			r.screen.SetContent(x+i, y, '░', tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
		}
	}
	return x + width
}

// fuseColor turns the timer yellow under 10 seconds and red under 5.
func fuseColor(secondsLeft float64) tcell.Color {
	switch {
	case secondsLeft < 5:
		return tcell.ColorRed
	case secondsLeft < 10:
		return tcell.ColorYellow
	default:
		return tcell.ColorGreen
	}
}

func healthColor(p match.Player) tcell.Color {
	ratio := float64(p.Health) / float64(p.MaxHealth)
	switch {
	case ratio < 0.25:
		return tcell.ColorRed
	case ratio < 0.5:
		return tcell.ColorYellow
	default:
		return tcell.ColorGreen
	}
}

// RenderMessage displays a hint line at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(2, y, msg, tcell.StyleDefault.Foreground(tcell.ColorGray))
}
