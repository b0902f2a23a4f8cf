package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	c = Correct
	m = Misplaced
	w = Wrong
)

func TestComputeAllCorrect(t *testing.T) {
	assert.Equal(t, Feedback{c, c, c, c, c}, Compute("abcde", "abcde"))
}

func TestComputeAllMisplaced(t *testing.T) {
	// A permutation with no repeated letters is misplaced everywhere.
	assert.Equal(t, Feedback{m, m, m, m, m}, Compute("abcde", "ecdba"))
}

func TestComputeAllWrong(t *testing.T) {
	assert.Equal(t, Feedback{w, w, w, w, w}, Compute("abcde", "fghij"))
}

func TestComputeRepeatedLetters(t *testing.T) {
	tests := []struct {
		name          string
		answer, guess string
		want          Feedback
	}{
		{"repeat correct", "aabbb", "aaccc", Feedback{c, c, w, w, w}},
		{"repeat misplaced", "aabbb", "ccaac", Feedback{w, w, m, m, w}},
		{"repeat some correct", "xxyyy", "zxxzz", Feedback{w, c, m, w, w}},
		// The answer has a single "a": only the first guess "a" claims it.
		{"extra duplicate is wrong", "azzzz", "aazzz", Feedback{c, w, c, c, c}},
		{"correct consumes before misplaced", "baaaa", "aaaab", Feedback{m, c, c, c, m}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.answer, tt.guess))
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	first := Compute("crane", "caner")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compute("crane", "caner"))
	}
}

func TestComputeLengthContract(t *testing.T) {
	require.Panics(t, func() { Compute("long answer", "crane") })
	require.Panics(t, func() { Compute("crane", "hi") })
	require.Panics(t, func() { Compute("", "") })
}
