package day12

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const small = `start-A
start-b
A-c
A-b
b-d
A-end
b-end`

const medium = `dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sj
kj-HN
kj-dc`

func parse(t *testing.T, s string) Caves {
	t.Helper()
	c, err := Parse([]byte(s))
	require.NoError(t, err)
	return c
}

func TestPathsSmall(t *testing.T) {
	c := parse(t, small)

	var got []string
	for _, p := range c.Paths(Strict) {
		got = append(got, strings.Join(p, ","))
	}
	want := []string{
		"start,A,b,A,c,A,end",
		"start,A,b,A,end",
		"start,A,b,end",
		"start,A,c,A,b,A,end",
		"start,A,c,A,b,end",
		"start,A,c,A,end",
		"start,A,end",
		"start,b,A,c,A,end",
		"start,b,A,end",
		"start,b,end",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Paths(Strict) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 36, c.Count(OneRevisit))
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		strict     int
		oneRevisit int
	}{
		{"small", small, 10, 36},
		{"medium", medium, 19, 103},
		{"large", string(sample), 226, 3509},
		{"single path", "start-a\na-end", 1, 1},
		{"two branches", "start-a\na-end\nstart-b\nb-end", 2, 2},
		{"big hub", "start-A\nA-b\nA-end", 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := parse(t, tt.in)
			assert.Equal(t, tt.strict, c.Count(Strict))
			assert.Equal(t, tt.oneRevisit, c.Count(OneRevisit))
		})
	}
}

// Every path that only exists with the allowance must visit exactly one
// small cave twice, and every strict path must still be found.
func TestOneRevisitExtendsStrict(t *testing.T) {
	c := parse(t, small)

	strict := map[string]bool{}
	for _, p := range c.Paths(Strict) {
		strict[strings.Join(p, ",")] = true
	}
	extra := 0
	for _, p := range c.Paths(OneRevisit) {
		if strict[strings.Join(p, ",")] {
			delete(strict, strings.Join(p, ","))
			continue
		}
		extra++
		visits := map[string]int{}
		doubled := 0
		for _, cave := range p {
			if IsBig(cave) {
				continue
			}
			visits[cave]++
			if visits[cave] == 2 {
				doubled++
			}
			assert.LessOrEqual(t, visits[cave], 2, p)
		}
		assert.Equal(t, 1, doubled, p)
		assert.Equal(t, 1, visits[Start], p)
		assert.Equal(t, 1, visits[End], p)
	}
	assert.Empty(t, strict, "strict paths missing from relaxed search")
	assert.Equal(t, 36-10, extra)
}

func TestRepeatable(t *testing.T) {
	c := parse(t, string(sample))
	names := c.Names()
	first := c.Paths(OneRevisit)
	second := c.Paths(OneRevisit)
	assert.Equal(t, first, second)
	assert.Equal(t, names, c.Names())
}

func TestIsBig(t *testing.T) {
	assert.True(t, IsBig("HN"))
	assert.False(t, IsBig("kj"))
	assert.False(t, IsBig(Start))
	assert.False(t, IsBig(""))
}

func TestParseErrors(t *testing.T) {
	tests := map[string]struct {
		in   string
		want error
	}{
		"no dash":   {"start-a\naend", ErrBadEdge},
		"self loop": {"start-a\na-a\na-end", ErrBadEdge},
		"no start":  {"a-end", ErrNoStart},
		"no end":    {"start-a", ErrNoEnd},
		"big cycle": {"start-A\nA-B\nB-end", ErrBigCycle},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
