package match

import "strconv"

// MaxHealth is every player's starting health.
const MaxHealth = 1000

// Player is one duelist. Health never drops below zero.
type Player struct {
	ID        int
	Name      string
	Health    int
	MaxHealth int
	IsCPU     bool // reserved; no CPU opponent is implemented
}

// NewPlayer creates a human player at full health. Names are 1-based.
func NewPlayer(id int) Player {
	return Player{
		ID:        id,
		Name:      "Player " + strconv.Itoa(id+1),
		Health:    MaxHealth,
		MaxHealth: MaxHealth,
	}
}

// IsAlive reports whether the player still has health left.
func (p Player) IsAlive() bool {
	return p.Health > 0
}

// TakeDamage reduces health by amount, clamped at zero.
// Returns the damage actually taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}
