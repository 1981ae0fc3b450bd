package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slidingSum is the literal reading of the puzzle: build every window
// sum, then compare neighbours.
func slidingSum(depths []int, window int) int {
	var sums []int
	for i := 0; i+window <= len(depths); i++ {
		s := 0
		for _, d := range depths[i : i+window] {
			s += d
		}
		sums = append(sums, s)
	}
	n := 0
	for i := 1; i < len(sums); i++ {
		if sums[i] > sums[i-1] {
			n++
		}
	}
	return n
}

func TestCountIncreases(t *testing.T) {
	depths, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, depths, 10)

	tests := []struct {
		window int
		want   int
	}{
		{0, 0},
		{1, 7},
		{3, 5},
		{10, 0},
		{11, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountIncreases(depths, tt.window), "window %d", tt.window)
		if tt.window > 0 {
			assert.Equal(t, slidingSum(depths, tt.window), CountIncreases(depths, tt.window), "window %d", tt.window)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("1\n2\nthree\n"))
	assert.ErrorContains(t, err, "line 3")
}

func TestSolve(t *testing.T) {
	ans, err := Solve(sample)
	require.NoError(t, err)
	assert.Equal(t, 7, ans.Part1)
	assert.Equal(t, 5, ans.Part2)
}
