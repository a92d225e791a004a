// Package problem generates the arithmetic problems players race to solve.
package problem

import (
	"fmt"
	"strings"
)

// Difficulty selects operand ranges and operators for generated problems.
type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

// Difficulties lists the known tiers in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// String returns the difficulty identifier.
func (d Difficulty) String() string {
	return string(d)
}

// ParseDifficulty converts a case-insensitive name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Difficulties {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Problem is a generated question and its integer answer.
type Problem struct {
	Question string
	Answer   int
}

// Source produces problems for a difficulty tier.
type Source interface {
	Generate(d Difficulty) Problem
}
