package mathdrill

import (
	"strconv"
	"strings"
)

// Check compares the child's input against the problem's answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored (e.g., "007" matches "7")
// - For multiple choice: "#n" selects the n-th choice, anything else is read as the value
func (p Problem) Check(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if p.MultipleChoice() {
		return p.checkChoice(input)
	}
	n, ok := normalizeInteger(input)
	return ok && n == p.Answer
}

// checkChoice reads "#n" as a 1-based choice position.
func (p Problem) checkChoice(input string) bool {
	if strings.HasPrefix(input, "#") {
		idx, err := strconv.Atoi(input[1:])
		if err != nil || idx < 1 || idx > len(p.Choices) {
			return false
		}
		return p.Choices[idx-1] == p.Answer
	}
	n, ok := normalizeInteger(input)
	return ok && n == p.Answer
}

func normalizeInteger(s string) (int, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
