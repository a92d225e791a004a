// Package game wires the match state machine to the terminal: it owns the
// event loop, the turn clock and the key bindings.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mathwars/internal/gamedata"
	"github.com/samdwyer/mathwars/internal/match"
	"github.com/samdwyer/mathwars/internal/problem"
	"github.com/samdwyer/mathwars/internal/telemetry"
	"github.com/samdwyer/mathwars/internal/ui"
)

// Preset is a setup-menu choice.
type Preset struct {
	Key        rune
	Players    int
	Difficulty problem.Difficulty
}

// Presets are the match types offered on the setup screen.
var Presets = []Preset{
	{Key: '1', Players: 1, Difficulty: problem.Easy},
	{Key: '2', Players: 2, Difficulty: problem.Easy},
	{Key: '3', Players: 2, Difficulty: problem.Medium},
	{Key: '4', Players: 2, Difficulty: problem.Hard},
}

// tick is posted by the clock goroutine every TickInterval.
type tick struct{}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	match    *match.Match
	menu     []ui.MenuItem
	running  bool
}

// New creates a new game instance on a fresh terminal screen.
func New(cfg Config) (*Game, error) {
	tuning, err := gamedata.LoadDifficultyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load difficulties: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := problem.NewGenerator(rand.New(rand.NewSource(seed)))

	g := newGame(cfg, match.New(gen, tuning, loopScheduler{post: screen.PostEvent}), tuning)
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	return g, nil
}

func newGame(cfg Config, m *match.Match, tuning *gamedata.DifficultyRegistry) *Game {
	return &Game{
		cfg:     cfg,
		match:   m,
		menu:    buildMenu(tuning),
		running: true,
	}
}

// buildMenu labels each preset with its tier color.
func buildMenu(tuning *gamedata.DifficultyRegistry) []ui.MenuItem {
	items := make([]ui.MenuItem, 0, len(Presets))
	for _, p := range Presets {
		def := tuning.Lookup(p.Difficulty.String())
		noun := "Players"
		if p.Players == 1 {
			noun = "Player"
		}
		items = append(items, ui.MenuItem{
			Key:   p.Key,
			Label: fmt.Sprintf("%d %s (%s - %s)", p.Players, noun, p.Difficulty, def.Name),
			Color: def.TCellColor(),
		})
	}
	return items
}

// Run executes the main game loop until the player quits or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	_, span := telemetry.Tracer("game").Start(ctx, "game.run")
	span.SetAttributes(
		attribute.Int64("game.seed", g.cfg.Seed),
		attribute.String("game.tick_interval", g.cfg.TickInterval.String()),
	)
	defer span.End()

	go g.clock(ctx)

	for g.running {
		g.renderer.Render(g.match, g.menu)

		ev := g.screen.PollEvent()
		if ev == nil {
			break
		}
		g.handleEvent(ctx, ev)
	}

	return nil
}

// clock posts a tick onto the event queue every TickInterval.
func (g *Game) clock(ctx context.Context) {
	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(tick{}))
		}
	}
}

// handleEvent processes a single event from the queue.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case tick:
			g.match.UpdateTimer(ctx, g.cfg.TickInterval.Seconds())
		case deferredCall:
			data.run()
		}
	case *tcell.EventResize:
		if g.screen != nil {
			g.screen.Sync()
		}
	}
}

// handleKeyEvent maps keyboard input onto match actions for the current phase.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyEnter:
		g.confirm(ctx)
		return
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		g.match.DeleteInput()
		return
	case tcell.KeyRune:
		g.handleRune(ctx, ev.Rune())
	}
}

func (g *Game) handleRune(ctx context.Context, r rune) {
	switch g.match.Phase() {
	case match.PhaseSetup:
		if r == 'q' || r == 'Q' {
			g.running = false
			return
		}
		for _, p := range Presets {
			if p.Key == r {
				g.match.Init(ctx, p.Players, p.Difficulty)
				return
			}
		}
	case match.PhaseActive:
		g.match.AppendInput(r)
	default:
		if r == 'q' || r == 'Q' {
			g.running = false
		}
	}
}

// confirm is the Enter key: ready, submit or restart depending on phase.
func (g *Game) confirm(ctx context.Context) {
	switch g.match.Phase() {
	case match.PhaseInterstitial:
		g.match.StartTurn(ctx)
	case match.PhaseActive:
		g.match.SubmitAnswer(ctx)
	case match.PhaseResolution:
		g.match.NextTurn()
	case match.PhaseGameOver:
		g.match.SetPhase(match.PhaseSetup)
	}
}
