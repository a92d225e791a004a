// Package match implements the turn and phase state machine of a duel:
// who is answering, what they are answering, and what a right, wrong or
// late answer does to the players' health.
package match

// Phase is the current stage of a match.
type Phase int

const (
	// PhaseSetup is the menu before a match is configured.
	PhaseSetup Phase = iota
	// PhaseInterstitial waits for the next player to take the device.
	PhaseInterstitial
	// PhaseActive is a running turn: the clock ticks and input is accepted.
	PhaseActive
	// PhaseResolution is the manual "next round" checkpoint of score-based
	// matches. Health-based matches never enter it.
	PhaseResolution
	// PhaseGameOver is reached when a player is knocked out.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInterstitial:
		return "interstitial"
	case PhaseActive:
		return "active"
	case PhaseResolution:
		return "resolution"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
