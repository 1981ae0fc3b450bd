package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteer(t *testing.T) {
	cmds, err := Parse(sample)
	require.NoError(t, err)

	assert.Equal(t, Position{Horizontal: 15, Depth: 10}, Steer(cmds))
	assert.Equal(t, Position{Horizontal: 15, Depth: 60}, SteerWithAim(cmds))
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"backward 3",
		"forward",
		"down x",
		"up 1 2",
	} {
		_, err := Parse([]byte(in))
		assert.ErrorIs(t, err, ErrBadCommand, in)
	}
}
