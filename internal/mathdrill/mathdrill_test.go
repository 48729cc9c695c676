package mathdrill

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestCheck_Typed(t *testing.T) {
	p := Problem{A: 40, B: 2, Op: OpAdd, Answer: 42}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"43", false},
		{"", false},
		{"abc", false},
		{"#1", false},
	}
	for _, tc := range tests {
		if got := p.Check(tc.input); got != tc.want {
			t.Errorf("Check(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheck_MultipleChoice(t *testing.T) {
	p := Problem{A: 2, B: 3, Op: OpAdd, Answer: 5, Choices: []int{4, 5, 6}}

	tests := []struct {
		input string
		want  bool
	}{
		{"#2", true},
		{"#1", false},
		{"#4", false},
		{"5", true},
		{"4", false},
		{"#x", false},
	}
	for _, tc := range tests {
		if got := p.Check(tc.input); got != tc.want {
			t.Errorf("Check(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestGenerateNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for age := 3; age <= 10; age++ {
		level := LevelForAge(age)
		for i := 0; i < 500; i++ {
			p := Generate(rng, level)
			if p.Answer < 0 {
				t.Fatalf("age %d: negative answer %s", age, p.Text())
			}
			if p.A > level.MaxOperand || p.B > level.MaxOperand {
				t.Fatalf("age %d: operand out of range %s", age, p.Text())
			}
			want := p.A + p.B
			if p.Op == OpSub {
				want = p.A - p.B
			}
			if p.Answer != want {
				t.Fatalf("%s answer = %d, want %d", p.Text(), p.Answer, want)
			}
		}
	}
}

func TestGenerateChoices(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	level := LevelForAge(4)
	for i := 0; i < 200; i++ {
		p := Generate(rng, level)
		if len(p.Choices) != level.Choices {
			t.Fatalf("choices = %v, want %d", p.Choices, level.Choices)
		}
		if !slices.Contains(p.Choices, p.Answer) {
			t.Fatalf("choices %v missing answer %d", p.Choices, p.Answer)
		}
		sorted := slices.Clone(p.Choices)
		slices.Sort(sorted)
		if len(slices.Compact(sorted)) != len(p.Choices) {
			t.Fatalf("duplicate choices %v", p.Choices)
		}
		for _, c := range p.Choices {
			if c < 0 {
				t.Fatalf("negative choice in %v", p.Choices)
			}
		}
	}
	if p := Generate(rng, LevelForAge(9)); p.MultipleChoice() {
		t.Error("older children type their answers")
	}
}

func TestText(t *testing.T) {
	p := Problem{A: 7, B: 3, Op: OpSub, Answer: 4}
	if got := p.Text(); got != "7 - 3 = ?" {
		t.Errorf("Text() = %q", got)
	}
}
