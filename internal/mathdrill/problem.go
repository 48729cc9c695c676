// Package mathdrill generates the age-scaled arithmetic problems behind
// the daily math mission.
package mathdrill

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Op is an arithmetic operation.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
)

// Level bounds the operands for an age band.
type Level struct {
	MaxOperand int
	Ops        []Op
	// Choices > 0 turns problems into multiple choice with that many options.
	Choices int
}

// LevelForAge maps a child's age to problem difficulty.
func LevelForAge(age int) Level {
	switch {
	case age <= 4:
		return Level{MaxOperand: 5, Ops: []Op{OpAdd}, Choices: 3}
	case age <= 6:
		return Level{MaxOperand: 10, Ops: []Op{OpAdd, OpSub}, Choices: 4}
	case age <= 8:
		return Level{MaxOperand: 20, Ops: []Op{OpAdd, OpSub}}
	default:
		return Level{MaxOperand: 50, Ops: []Op{OpAdd, OpSub}}
	}
}

// Problem is one arithmetic question.
type Problem struct {
	A, B    int
	Op      Op
	Answer  int
	Choices []int // empty for typed answers
}

// Text renders the question, e.g. "7 - 3 = ?".
func (p Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op, p.B)
}

// MultipleChoice reports whether the problem is answered by picking a choice.
func (p Problem) MultipleChoice() bool {
	return len(p.Choices) > 0
}

// Generate draws a problem for level. Subtraction never goes below zero.
func Generate(rng *rand.Rand, level Level) Problem {
	op := level.Ops[rng.IntN(len(level.Ops))]
	a := rng.IntN(level.MaxOperand + 1)
	b := rng.IntN(level.MaxOperand + 1)

	p := Problem{Op: op}
	switch op {
	case OpSub:
		if b > a {
			a, b = b, a
		}
		p.A, p.B, p.Answer = a, b, a-b
	default:
		p.A, p.B, p.Answer = a, b, a+b
	}

	if level.Choices > 1 {
		p.Choices = choices(rng, p.Answer, level.Choices)
	}
	return p
}

// choices returns n distinct non-negative options including answer, shuffled.
func choices(rng *rand.Rand, answer, n int) []int {
	out := []int{answer}
	for spread := 1; len(out) < n; spread++ {
		for _, c := range []int{answer + spread, answer - spread} {
			if len(out) < n && c >= 0 && !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
