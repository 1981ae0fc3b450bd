package aoc

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	cfg := Config{InputDir: t.TempDir(), Parallel: 2}
	writeFile(t, cfg.InputPath(daySum), "10\n20\n5\n")
	writeFile(t, cfg.InputPath(dayMax), "4\n")
	writeFile(t, cfg.InputPath(dayWrong), "1\n")
	return &Runner{Config: cfg, Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func lookup(t *testing.T, day int) Puzzle {
	t.Helper()
	p, err := Lookup(day)
	require.NoError(t, err)
	return p
}

func TestCheckSample(t *testing.T) {
	r := testRunner(t)
	got, err := r.CheckSample(lookup(t, daySum))
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: 3, Part2: 2}, got)

	got, err = r.CheckSample(lookup(t, dayMax))
	require.NoError(t, err, "no sample is not an error")
	assert.Equal(t, Answer{}, got)

	got, err = r.CheckSample(lookup(t, dayWrong))
	assert.ErrorIs(t, err, ErrSampleMismatch)
	assert.Equal(t, Answer{Part1: 5, Part2: 5}, got)

	_, err = r.CheckSample(lookup(t, dayFail))
	assert.ErrorContains(t, err, `bad number "x"`)
}

func TestRunSampleSolvesOnce(t *testing.T) {
	calls := 0
	p := Puzzle{
		Day:    daySum,
		Sample: []byte("4\n"),
		Want:   Answer{Part1: 4, Part2: 4},
		Solve: func(input []byte) (Answer, error) {
			calls++
			return sumAndMax(input)
		},
	}
	res, err := testRunner(t).RunSample(p)
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: 4, Part2: 4}, res.Answer)
	assert.Equal(t, 1, calls)
}

func TestRunSample(t *testing.T) {
	res, err := testRunner(t).RunSample(lookup(t, daySum))
	require.NoError(t, err)
	assert.Equal(t, daySum, res.Day)
	assert.Equal(t, Answer{Part1: 3, Part2: 2}, res.Answer)
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	r := testRunner(t)
	res, err := r.Run(ctx, lookup(t, daySum))
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: 35, Part2: 20}, res.Answer)

	_, err = r.Run(ctx, lookup(t, dayWrong))
	assert.ErrorIs(t, err, ErrSampleMismatch)

	r.Config.SkipSamples = true
	res, err = r.Run(ctx, lookup(t, dayWrong))
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: 1, Part2: 1}, res.Answer)

	_, err = r.Run(ctx, lookup(t, dayFail))
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestRunAll(t *testing.T) {
	ctx := context.Background()
	r := testRunner(t)
	results, err := r.RunAll(ctx, []int{dayMax, daySum})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, dayMax, results[0].Day)
	assert.Equal(t, Answer{Part1: 4, Part2: 4}, results[0].Answer)
	assert.Equal(t, daySum, results[1].Day)

	_, err = r.RunAll(ctx, []int{daySum, dayWrong})
	assert.ErrorIs(t, err, ErrSampleMismatch)

	_, err = r.RunAll(ctx, []int{daySum, 99})
	assert.ErrorIs(t, err, errNoDay)
}
