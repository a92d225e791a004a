package gamedata

import "github.com/gdamore/tcell/v2"

// DifficultyDef holds the damage tuning for one difficulty tier.
//
// A correct answer deals Base plus Bonus scaled by the fraction of the turn
// still on the clock. A wrong or timed-out answer costs the solver Penalty.
type DifficultyDef struct {
	ID      string `json:"id"`      // Matches problem.Difficulty (e.g., "EASY")
	Name    string `json:"name"`    // Rank shown in menus (e.g., "Recruit")
	Color   string `json:"color"`   // Hex color code for the rank label
	Base    int    `json:"base"`    // Damage for a correct answer at time zero
	Bonus   int    `json:"bonus"`   // Extra damage for answering instantly
	Penalty int    `json:"penalty"` // Self damage for a miss or timeout
}

// TCellColor returns the color as a tcell.Color.
func (d *DifficultyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// DifficultiesFile represents the structure of difficulties.json.
type DifficultiesFile struct {
	Difficulties []DifficultyDef `json:"difficulties"`
}

// LoadDifficulties loads tier definitions from the embedded difficulties.json file.
func LoadDifficulties() ([]DifficultyDef, error) {
	file, err := Load[DifficultiesFile]("difficulties.json")
	if err != nil {
		return nil, err
	}
	return file.Difficulties, nil
}
