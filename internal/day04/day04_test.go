package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	g, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, g.Draws, 27)
	require.Len(t, g.Boards, 3)

	wins := g.Play()
	require.Len(t, wins, 3)

	first := wins[0]
	assert.Equal(t, 2, first.Board)
	assert.Equal(t, 24, first.Draw)
	assert.Equal(t, 4512, first.Score)

	last := wins[len(wins)-1]
	assert.Equal(t, 1, last.Board)
	assert.Equal(t, 13, last.Draw)
	assert.Equal(t, 1924, last.Score)
}

func TestBoardColumn(t *testing.T) {
	b, err := newBoard([][]int{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)
	assert.False(t, b.Mark(2))
	assert.False(t, b.Mark(9))
	assert.True(t, b.Mark(4))
	assert.Equal(t, 4, b.Unmarked())
}

func TestNoWinner(t *testing.T) {
	_, err := Solve([]byte("1,2\n\n1 3\n4 2\n"))
	assert.ErrorIs(t, err, ErrNoWinner)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		in   string
		want error
	}{
		"empty":     {"", ErrNoDraws},
		"no boards": {"1,2,3\n", ErrNoBoards},
		"ragged":    {"1,2\n\n1 2\n3\n", ErrBadBoard},
		"bad cell":  {"1,2\n\n1 x\n3 4\n", ErrBadBoard},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
