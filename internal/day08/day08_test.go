package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const single = "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | cdfeb fcadb cdfeb cdbaf"

func segs(t *testing.T, s string) Segments {
	t.Helper()
	m, err := parseSegments(s)
	require.NoError(t, err)
	return m
}

func TestDeduce(t *testing.T) {
	entries, err := Parse([]byte(single))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	digit, err := entries[0].Deduce()
	require.NoError(t, err)

	want := map[int]string{
		0: "cagedb",
		1: "ab",
		2: "gcdfa",
		3: "fbcad",
		4: "eafb",
		5: "cdfbe",
		6: "cdfgeb",
		7: "dab",
		8: "acedgfb",
		9: "cefabd",
	}
	for d, p := range want {
		assert.Equal(t, segs(t, p), digit[d], "digit %d", d)
	}

	v, err := entries[0].Value()
	require.NoError(t, err)
	assert.Equal(t, 5353, v)
}

func TestSample(t *testing.T) {
	entries, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, entries, 10)

	wantValues := []int{8394, 9781, 1197, 9361, 4873, 8418, 4548, 1625, 8717, 4315}
	easy := 0
	for i, e := range entries {
		easy += e.EasyDigits()
		v, err := e.Value()
		require.NoError(t, err)
		assert.Equal(t, wantValues[i], v, "entry %d", i)
	}
	assert.Equal(t, 26, easy)
}

func TestSegments(t *testing.T) {
	s := segs(t, "gfa")
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(segs(t, "ag")))
	assert.False(t, s.Contains(segs(t, "ab")))

	_, err := parseSegments("abz")
	assert.Error(t, err)
}

func TestDeduceErrors(t *testing.T) {
	_, err := Parse([]byte("ab cd | ab"))
	assert.ErrorIs(t, err, ErrBadEntry)

	// Ten patterns, but no two-segment one, so 1 can't be found.
	entries, err := Parse([]byte("abc abcd abcdefg abcde abcdf abcef abcdef abcdeg abcdfg abd | abc abc abc abc"))
	require.NoError(t, err)
	_, err = entries[0].Value()
	assert.ErrorIs(t, err, ErrUndecoded)
}
