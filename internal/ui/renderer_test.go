package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mathwars/internal/gamedata"
	"github.com/samdwyer/mathwars/internal/match"
	"github.com/samdwyer/mathwars/internal/problem"
)

type fixedSource struct{}

func (fixedSource) Generate(problem.Difficulty) problem.Problem {
	return problem.Problem{Question: "5 + 7", Answer: 12}
}

func newTestRenderer(t *testing.T) (*Renderer, *Screen) {
	t.Helper()
	screen, err := newScreen(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Close)
	return NewRenderer(screen), screen
}

// row reads back one line of the screen buffer.
func row(s *Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func screenText(s *Screen) string {
	_, h := s.Size()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = row(s, y)
	}
	return strings.Join(lines, "\n")
}

func TestRenderPhases(t *testing.T) {
	ctx := context.Background()
	renderer, screen := newTestRenderer(t)
	m := match.New(fixedSource{}, gamedata.MustLoadDifficultyRegistry(), nil)

	menu := []MenuItem{{Key: '1', Label: "1 Player (Easy)", Color: tcell.ColorGreen}}
	renderer.Render(m, menu)
	if text := screenText(screen); !strings.Contains(text, "[1] 1 Player (Easy)") {
		t.Errorf("setup screen missing menu item:\n%s", text)
	}

	m.Init(ctx, 2, problem.Easy)
	renderer.Render(m, menu)
	text := screenText(screen)
	if !strings.Contains(text, "Pass device to") || !strings.Contains(text, "Player 1") {
		t.Errorf("interstitial screen missing prompt:\n%s", text)
	}
	if !strings.Contains(text, "Recruit") || !strings.Contains(text, "1000/1000") {
		t.Errorf("scoreboard missing difficulty or health:\n%s", text)
	}

	m.StartTurn(ctx)
	m.AppendInput('1')
	renderer.Render(m, menu)
	text = screenText(screen)
	if !strings.Contains(text, "5 + 7 = ?") || !strings.Contains(text, "> 1____") {
		t.Errorf("turn screen missing problem or input:\n%s", text)
	}

	m.SubmitAnswer(ctx)
	renderer.Render(m, menu)
	if text := screenText(screen); !strings.Contains(text, "-50 HP") {
		t.Errorf("turn screen missing feedback:\n%s", text)
	}
}

func TestFuseColor(t *testing.T) {
	tests := []struct {
		seconds float64
		want    tcell.Color
	}{
		{30, tcell.ColorGreen},
		{10, tcell.ColorGreen},
		{9.9, tcell.ColorYellow},
		{4.9, tcell.ColorRed},
		{0, tcell.ColorRed},
	}

	for _, tt := range tests {
		if got := fuseColor(tt.seconds); got != tt.want {
			t.Errorf("fuseColor(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}
