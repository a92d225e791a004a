package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadDifficulties(t *testing.T) {
	defs, err := LoadDifficulties()
	if err != nil {
		t.Fatalf("Failed to load difficulties: %v", err)
	}

	if len(defs) != 3 {
		t.Fatalf("Expected 3 difficulties, got %d", len(defs))
	}

	tests := []struct {
		id      string
		base    int
		bonus   int
		penalty int
	}{
		{"EASY", 100, 50, 50},
		{"MEDIUM", 150, 100, 100},
		{"HARD", 200, 200, 150},
	}

	for i, tt := range tests {
		d := defs[i]
		if d.ID != tt.id {
			t.Errorf("difficulty %d: ID = %q, want %q", i, d.ID, tt.id)
		}
		if d.Base != tt.base || d.Bonus != tt.bonus || d.Penalty != tt.penalty {
			t.Errorf("%s: got {%d %d %d}, want {%d %d %d}",
				tt.id, d.Base, d.Bonus, d.Penalty, tt.base, tt.bonus, tt.penalty)
		}
	}
}

func TestDifficultyRegistry(t *testing.T) {
	registry, err := LoadDifficultyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 3 {
		t.Errorf("Expected 3 tiers, got %d", registry.Count())
	}

	hard := registry.GetByID("HARD")
	if hard == nil {
		t.Fatal("HARD not found by ID")
	}
	if hard.Name != "Wizard" {
		t.Errorf("Expected name 'Wizard', got %q", hard.Name)
	}

	if registry.GetByID("NIGHTMARE") != nil {
		t.Error("unknown ID should return nil")
	}

	if got := registry.Lookup("NIGHTMARE"); got.ID != "EASY" {
		t.Errorf("Lookup of unknown ID fell back to %q, want EASY", got.ID)
	}
	if got := registry.Lookup("MEDIUM"); got.Penalty != 100 {
		t.Errorf("Lookup(MEDIUM).Penalty = %d, want 100", got.Penalty)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#4CAF50", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestDifficultyDefColor(t *testing.T) {
	def := DifficultyDef{ID: "TEST", Color: "#FF0000"}
	if got := def.TCellColor(); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("TCellColor() = %v, want red", got)
	}

	def.Color = "bogus"
	if got := def.TCellColor(); got != tcell.ColorWhite {
		t.Errorf("TCellColor() with bad hex = %v, want white fallback", got)
	}
}
