// Package day05 solves "Hydrothermal Venture": rasterizing vent lines
// onto the ocean floor and counting where they overlap.
package day05

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    5,
		Title:  "Hydrothermal Venture",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 5, Part2: 12},
	})
}

var (
	ErrBadLine = errors.New("day05: bad line")

	// ErrSlope is returned for segments that are neither axis-aligned
	// nor at exactly 45 degrees; they have no well-defined cells.
	ErrSlope = errors.New("day05: segment is not horizontal, vertical or diagonal")
)

// Segment is a vent line between two inclusive endpoints.
type Segment struct {
	From, To aoc.Pt
}

func (s Segment) Diagonal() bool {
	return s.From.X != s.To.X && s.From.Y != s.To.Y
}

// Walk calls f for every cell covered by s, from From to To.
func (s Segment) Walk(f func(aoc.Pt)) {
	p := s.From
	for {
		f(p)
		if p == s.To {
			return
		}
		p = p.Toward(s.To)
	}
}

func parsePt(s string) (aoc.Pt, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return aoc.Pt{}, fmt.Errorf("bad point %q", s)
	}
	x, err := aoc.ParseInt(xs)
	if err != nil {
		return aoc.Pt{}, err
	}
	y, err := aoc.ParseInt(ys)
	if err != nil {
		return aoc.Pt{}, err
	}
	return aoc.Pt{X: x, Y: y}, nil
}

func Parse(input []byte) ([]Segment, error) {
	var segs []Segment
	for i, line := range aoc.Lines(input) {
		a, b, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadLine, i+1, line)
		}
		from, err := parsePt(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, i+1, err)
		}
		to, err := parsePt(strings.TrimSpace(b))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadLine, i+1, err)
		}
		s := Segment{From: from, To: to}
		if s.Diagonal() && aoc.AbsInt(from.X, to.X) != aoc.AbsInt(from.Y, to.Y) {
			return nil, fmt.Errorf("%w: line %d: %q", ErrSlope, i+1, line)
		}
		segs = append(segs, s)
	}
	return segs, nil
}

// Overlaps counts the cells covered by at least two segments. Diagonal
// segments are skipped unless withDiagonals is set.
func Overlaps(segs []Segment, withDiagonals bool) int {
	floor := map[aoc.Pt]int{}
	n := 0
	for _, s := range segs {
		if s.Diagonal() && !withDiagonals {
			continue
		}
		s.Walk(func(p aoc.Pt) {
			floor[p]++
			if floor[p] == 2 {
				n++
			}
		})
	}
	return n
}

func Solve(input []byte) (aoc.Answer, error) {
	segs, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{
		Part1: Overlaps(segs, false),
		Part2: Overlaps(segs, true),
	}, nil
}
