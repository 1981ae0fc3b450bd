package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2021"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		line string
		want Result
	}{
		{"([{}])", Result{Status: Complete}},
		{"", Result{Status: Complete}},
		{"(]", Result{Status: Corrupted, Illegal: ']'}},
		{"([", Result{Status: Incomplete, Completion: "])"}},
		{"{([(<{}[<>[]}>{[]{[(<()>", Result{Status: Corrupted, Illegal: '}'}},
		{"[[<[([]))<([[{}[[()]]]", Result{Status: Corrupted, Illegal: ')'}},
		{"[({(<(())[]>[[{[]{<()<>>", Result{Status: Incomplete, Completion: "}}]])})]"}},
		{"<{([{{}}[<[[[<>{}]]]>[]]", Result{Status: Incomplete, Completion: "])}>"}},
	}
	for _, tt := range tests {
		got, err := Check(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestCheckErrors(t *testing.T) {
	_, err := Check("(a)")
	assert.ErrorIs(t, err, ErrUnknownGlyph)

	_, err = Check("())")
	assert.ErrorIs(t, err, ErrUnopened)
}

func TestCompletionScore(t *testing.T) {
	tests := map[string]int{
		"}}]])})]":  288957,
		")}>]})":    5566,
		"}}>}>))))": 1480781,
		"]]}}]}]}>": 995444,
		"])}>":      294,
	}
	for completion, want := range tests {
		r := Result{Status: Incomplete, Completion: completion}
		assert.Equal(t, want, r.CompletionScore(), completion)
	}
}

func TestScores(t *testing.T) {
	e, m, err := Scores(aoc.Lines(sample))
	require.NoError(t, err)
	assert.Equal(t, 26397, e)
	assert.Equal(t, 288957, m)

	_, _, err = Scores([]string{"()", "(]"})
	assert.ErrorIs(t, err, ErrNoIncomplete)
}
