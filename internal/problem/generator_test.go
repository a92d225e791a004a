package problem

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestGenerateBounds(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		minAnswer  int
		maxAnswer  int
	}{
		{Easy, 2, 100},
		{Medium, 1, 900},
		{Hard, 2, 510},
		{Difficulty("NIGHTMARE"), 2, 20},
	}

	gen := NewGenerator(rand.New(rand.NewSource(42)))

	for _, tt := range tests {
		for i := 0; i < 2000; i++ {
			p := gen.Generate(tt.difficulty)
			if p.Answer < tt.minAnswer || p.Answer > tt.maxAnswer {
				t.Fatalf("%s: answer %d outside [%d,%d] for %q",
					tt.difficulty, p.Answer, tt.minAnswer, tt.maxAnswer, p.Question)
			}
		}
	}
}

func TestGenerateAnswerMatchesQuestion(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)))

	for i := 0; i < 500; i++ {
		var a, b, c int

		p := gen.Generate(Easy)
		if n, err := fmt.Sscanf(p.Question, "%d + %d", &a, &b); err != nil || n != 2 {
			t.Fatalf("easy question %q did not parse: %v", p.Question, err)
		}
		if a < 1 || a > 50 || b < 1 || b > 50 || p.Answer != a+b {
			t.Errorf("easy %q = %d is wrong", p.Question, p.Answer)
		}

		p = gen.Generate(Medium)
		if n, err := fmt.Sscanf(p.Question, "%d * %d", &a, &b); err != nil || n != 2 {
			t.Fatalf("medium question %q did not parse: %v", p.Question, err)
		}
		if a < 1 || a > 100 || b < 1 || b > 9 || p.Answer != a*b {
			t.Errorf("medium %q = %d is wrong", p.Question, p.Answer)
		}

		p = gen.Generate(Hard)
		if n, err := fmt.Sscanf(p.Question, "%d * %d + %d", &a, &b, &c); err != nil || n != 3 {
			t.Fatalf("hard question %q did not parse: %v", p.Question, err)
		}
		if a < 1 || a > 100 || b < 1 || b > 5 || c < 1 || c > 10 || p.Answer != a*b+c {
			t.Errorf("hard %q = %d is wrong", p.Question, p.Answer)
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	gen1 := NewGenerator(rand.New(rand.NewSource(12345)))
	gen2 := NewGenerator(rand.New(rand.NewSource(12345)))

	for i := 0; i < 20; i++ {
		for _, d := range Difficulties {
			p1, p2 := gen1.Generate(d), gen2.Generate(d)
			if p1 != p2 {
				t.Fatalf("same seed produced %+v and %+v", p1, p2)
			}
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"EASY", Easy, false},
		{"medium", Medium, false},
		{" Hard ", Hard, false},
		{"expert", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
