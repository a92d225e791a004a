package match

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/mathwars/internal/gamedata"
	"github.com/samdwyer/mathwars/internal/problem"
	"github.com/samdwyer/mathwars/internal/telemetry"
)

const (
	// TurnDuration is the length of one turn in seconds.
	TurnDuration = 30.0
	// MaxInputLength caps the digits a player can type.
	MaxInputLength = 5
	// MaxPlayers is the largest supported match.
	MaxPlayers = 2
	// FeedbackDelay is how long a wrong-answer message stays visible.
	FeedbackDelay = time.Second
	// KnockoutFeedback is shown when a match ends by knockout.
	KnockoutFeedback = "KO!"
)

// Match owns all mutable duel state. Every method runs to completion
// synchronously; callers must drive a Match from a single goroutine.
type Match struct {
	phase      Phase
	players    []Player
	turn       int
	difficulty problem.Difficulty
	round      int
	current    *problem.Problem
	pending    *problem.Problem // shared by every player within a round
	input      string
	timeLeft   float64
	feedback   string

	problems  problem.Source
	tuning    *gamedata.DifficultyRegistry
	scheduler Scheduler
	tracer    trace.Tracer

	// feedbackGen increments on every feedback write so a scheduled clear
	// can tell whether its message has been superseded.
	feedbackGen   uint64
	cancelPending func()
}

// New creates a match in the setup phase. A nil scheduler disables the
// automatic clearing of wrong-answer feedback.
func New(problems problem.Source, tuning *gamedata.DifficultyRegistry, scheduler Scheduler) *Match {
	return &Match{
		phase:      PhaseSetup,
		difficulty: problem.Easy,
		round:      1,
		timeLeft:   TurnDuration,
		problems:   problems,
		tuning:     tuning,
		scheduler:  scheduler,
		tracer:     telemetry.Tracer("match"),
	}
}

// =============================================================================
// Observable state
// =============================================================================

// Phase returns the current phase.
func (m *Match) Phase() Phase { return m.phase }

// Players returns a copy of the players in turn order.
func (m *Match) Players() []Player {
	out := make([]Player, len(m.players))
	copy(out, m.players)
	return out
}

// CurrentTurnIndex returns the index of the acting player.
func (m *Match) CurrentTurnIndex() int { return m.turn }

// CurrentPlayer returns the acting player.
func (m *Match) CurrentPlayer() Player { return *m.actor() }

// Difficulty returns the difficulty chosen at Init.
func (m *Match) Difficulty() problem.Difficulty { return m.difficulty }

// Round returns the 1-based round number.
func (m *Match) Round() int { return m.round }

// CurrentProblem returns the problem on screen, if any.
func (m *Match) CurrentProblem() (problem.Problem, bool) {
	if m.current == nil {
		return problem.Problem{}, false
	}
	return *m.current, true
}

// CurrentInput returns the digits typed so far.
func (m *Match) CurrentInput() string { return m.input }

// TimeRemaining returns the seconds left in the current turn.
func (m *Match) TimeRemaining() float64 { return m.timeLeft }

// Feedback returns the transient message, or "" when there is none.
func (m *Match) Feedback() string { return m.feedback }

// Tuning returns the damage table for the match difficulty.
func (m *Match) Tuning() gamedata.DifficultyDef {
	return m.tuning.Lookup(string(m.difficulty))
}

// Winner returns the last player standing once the match is over.
// A solo player who is knocked out has no winner.
func (m *Match) Winner() (Player, bool) {
	if m.phase != PhaseGameOver {
		return Player{}, false
	}
	var winner *Player
	for i := range m.players {
		p := &m.players[i]
		if p.IsAlive() && (winner == nil || p.Health > winner.Health) {
			winner = p
		}
	}
	if winner == nil {
		return Player{}, false
	}
	return *winner, true
}

// Damage is the amount a correct answer deals: base plus the bonus scaled
// by the share of the turn left on the clock, rounded.
func Damage(def gamedata.DifficultyDef, timeRemaining float64) int {
	return int(math.Round(float64(def.Base) + float64(def.Bonus)*timeRemaining/TurnDuration))
}

// =============================================================================
// Actions
// =============================================================================

// Init starts a new match with playerCount players (clamped to 1..2).
func (m *Match) Init(ctx context.Context, playerCount int, difficulty problem.Difficulty) {
	_, span := m.tracer.Start(ctx, "match.init")
	defer span.End()

	playerCount = max(1, min(playerCount, MaxPlayers))

	m.players = make([]Player, playerCount)
	for i := range m.players {
		m.players[i] = NewPlayer(i)
	}
	m.difficulty = difficulty
	m.turn = 0
	m.round = 1
	m.current = nil
	m.pending = nil
	m.input = ""
	m.timeLeft = TurnDuration
	m.setFeedback("")
	m.phase = PhaseInterstitial

	span.SetAttributes(
		attribute.Int("match.players", playerCount),
		attribute.String("match.difficulty", difficulty.String()),
	)
}

// SetPhase forces the phase. It is used for the restart path between
// game over and setup, and discards any scheduled feedback clear.
func (m *Match) SetPhase(phase Phase) {
	m.cancelFeedbackClear()
	m.phase = phase
}

// StartTurn begins the acting player's turn. The first player of a round
// draws a new problem; everyone after them answers the same one.
func (m *Match) StartTurn(ctx context.Context) {
	if m.phase != PhaseInterstitial {
		return
	}

	_, span := m.tracer.Start(ctx, "match.start_turn")
	defer span.End()

	for _, p := range m.players {
		if !p.IsAlive() {
			m.phase = PhaseGameOver
			span.SetAttributes(attribute.Bool("game_over", true))
			return
		}
	}

	if m.turn == 0 || m.pending == nil {
		p := m.problems.Generate(m.difficulty)
		m.pending = &p
	}
	m.current = m.pending

	m.input = ""
	m.timeLeft = TurnDuration
	m.setFeedback("")
	m.phase = PhaseActive

	span.SetAttributes(
		attribute.Int("turn", m.turn),
		attribute.Int("round", m.round),
		attribute.String("question", m.current.Question),
	)
}

// AppendInput adds a digit to the answer being typed.
func (m *Match) AppendInput(digit rune) {
	if m.phase != PhaseActive || digit < '0' || digit > '9' {
		return
	}
	if len(m.input) >= MaxInputLength {
		return
	}
	m.input += string(digit)
}

// DeleteInput removes the last typed digit.
func (m *Match) DeleteInput() {
	if m.phase != PhaseActive || m.input == "" {
		return
	}
	m.input = m.input[:len(m.input)-1]
}

// SubmitAnswer resolves the typed answer. It is also how a timeout is
// resolved: with the clock at zero, missing or wrong input takes the
// penalty and the turn passes on.
func (m *Match) SubmitAnswer(ctx context.Context) {
	if m.phase != PhaseActive || m.current == nil {
		return
	}

	answer, err := strconv.Atoi(m.input)
	timedOut := m.timeLeft <= 0
	if err != nil && !timedOut {
		return
	}

	_, span := m.tracer.Start(ctx, "match.submit")
	defer span.End()

	def := m.Tuning()
	solver := m.actor()
	correct := err == nil && answer == m.current.Answer

	span.SetAttributes(
		attribute.Int("turn", m.turn),
		attribute.Int("round", m.round),
		attribute.Bool("correct", correct),
		attribute.Bool("timed_out", timedOut),
	)

	if correct {
		damage := Damage(def, m.timeLeft)
		if opponent := m.opponent(); opponent != nil {
			dealt := opponent.TakeDamage(damage)
			span.SetAttributes(attribute.Int("damage", dealt))
			if !opponent.IsAlive() {
				m.knockout()
				span.SetAttributes(attribute.Bool("knockout", true))
				return
			}
		}
		m.advance()
		return
	}

	taken := solver.TakeDamage(def.Penalty)
	span.SetAttributes(attribute.Int("penalty", taken))
	if !solver.IsAlive() {
		m.knockout()
		span.SetAttributes(attribute.Bool("knockout", true))
		return
	}

	if timedOut {
		m.advance()
		return
	}

	msg := fmt.Sprintf("-%d HP", def.Penalty)
	m.input = ""
	m.setFeedback(msg)
	m.scheduleFeedbackClear(msg)
}

// NextTurn leaves the resolution checkpoint of a score-based match.
// Health-based matches advance inside SubmitAnswer, so this only acts in
// PhaseResolution.
func (m *Match) NextTurn() {
	if m.phase != PhaseResolution {
		return
	}
	m.advance()
	m.timeLeft = TurnDuration
}

// UpdateTimer runs the clock down by dt seconds. When it reaches zero the
// answer is submitted as it stands.
func (m *Match) UpdateTimer(ctx context.Context, dt float64) {
	if m.phase != PhaseActive || dt < 0 {
		return
	}
	m.timeLeft = max(0, m.timeLeft-dt)
	if m.timeLeft <= 0 {
		m.SubmitAnswer(ctx)
	}
}

// =============================================================================
// Internals
// =============================================================================

// actor returns the acting player. An out-of-range turn index means Init or
// advance broke an invariant, so it panics.
func (m *Match) actor() *Player {
	if m.turn < 0 || m.turn >= len(m.players) {
		panic(fmt.Sprintf("match: turn index %d out of range for %d players", m.turn, len(m.players)))
	}
	return &m.players[m.turn]
}

// opponent returns the player a correct answer hits, or nil in a solo match.
func (m *Match) opponent() *Player {
	if len(m.players) < 2 {
		return nil
	}
	return &m.players[(m.turn+1)%len(m.players)]
}

// advance hands the turn to the next player, starting a new round on wrap.
func (m *Match) advance() {
	next := (m.turn + 1) % len(m.players)
	if next == 0 {
		m.round++
		m.pending = nil
	}
	m.turn = next
	m.input = ""
	m.setFeedback("")
	m.phase = PhaseInterstitial
}

func (m *Match) knockout() {
	m.input = ""
	m.setFeedback(KnockoutFeedback)
	m.phase = PhaseGameOver
}

// setFeedback replaces the feedback message and invalidates any clear
// scheduled for the previous one.
func (m *Match) setFeedback(msg string) {
	m.cancelFeedbackClear()
	m.feedbackGen++
	m.feedback = msg
}

func (m *Match) scheduleFeedbackClear(msg string) {
	if m.scheduler == nil {
		return
	}
	gen := m.feedbackGen
	m.cancelPending = m.scheduler.After(FeedbackDelay, func() {
		if m.feedbackGen != gen || m.phase != PhaseActive || m.feedback != msg {
			return
		}
		m.feedback = ""
		m.cancelPending = nil
	})
}

func (m *Match) cancelFeedbackClear() {
	if m.cancelPending != nil {
		m.cancelPending()
		m.cancelPending = nil
	}
}
