package aoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrSampleMismatch means a puzzle's example input did not produce the
// documented answers, so its real answer is not worth trusting.
var ErrSampleMismatch = errors.New("aoc: sample answer mismatch")

// Result is one finished puzzle run.
type Result struct {
	Day     int
	Answer  Answer
	Elapsed time.Duration
}

// Runner executes registered puzzles against their inputs.
type Runner struct {
	Config Config
	Log    *slog.Logger
}

func (r *Runner) log() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}
	return r.Log
}

// CheckSample runs p on its example input, compares against p.Want and
// returns the answer it got. A puzzle without a sample yields the zero
// Answer and no error.
func (r *Runner) CheckSample(p Puzzle) (Answer, error) {
	if p.Sample == nil {
		r.log().Warn("no sample", "day", p.Day)
		return Answer{}, nil
	}
	got, err := p.Solve(p.Sample)
	if err != nil {
		return Answer{}, fmt.Errorf("day %d sample: %w", p.Day, err)
	}
	if got.Part1 != p.Want.Part1 || got.Part2 != p.Want.Part2 {
		return got, fmt.Errorf("%w: day %d got %v; want %v", ErrSampleMismatch, p.Day, got, p.Want)
	}
	r.log().Debug("sample ok", "day", p.Day)
	return got, nil
}

// RunSample checks and returns the answer for p's example input only.
func (r *Runner) RunSample(p Puzzle) (Result, error) {
	start := time.Now()
	ans, err := r.CheckSample(p)
	if err != nil {
		return Result{}, err
	}
	return Result{Day: p.Day, Answer: ans, Elapsed: time.Since(start)}, nil
}

// Run checks p's sample (unless disabled) and then solves the real input.
func (r *Runner) Run(ctx context.Context, p Puzzle) (Result, error) {
	if !r.Config.SkipSamples {
		if _, err := r.CheckSample(p); err != nil {
			return Result{}, err
		}
	}
	in, err := r.Config.Input(ctx, p.Day)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", p.Day, err)
	}
	r.log().Debug("input loaded", "day", p.Day, "path", r.Config.InputPath(p.Day), "bytes", len(in))
	start := time.Now()
	ans, err := p.Solve(in)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", p.Day, err)
	}
	res := Result{Day: p.Day, Answer: ans, Elapsed: time.Since(start)}
	r.log().Info("solved", "day", p.Day, "title", p.Title, "elapsed", res.Elapsed)
	return res, nil
}

// RunAll runs the given days concurrently, at most Config.Parallel at a
// time, and returns their results in the order of days. The first
// failure cancels the remaining runs.
func (r *Runner) RunAll(ctx context.Context, days []int) ([]Result, error) {
	ps := make([]Puzzle, len(days))
	for i, day := range days {
		p, err := Lookup(day)
		if err != nil {
			return nil, err
		}
		ps[i] = p
	}
	results := make([]Result, len(days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Config.Parallel, 1))
	for i, p := range ps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.Run(gctx, p)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
