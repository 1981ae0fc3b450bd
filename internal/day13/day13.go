// Package day13 solves "Transparent Origami": folding a sheet of dots
// along horizontal and vertical lines.
package day13

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
		Day:    13,
		Title:  "Transparent Origami",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 17, Part2: 16},
	})
}

const dot = '#'

var (
	ErrBadDot  = errors.New("day13: bad dot")
	ErrBadFold = errors.New("day13: bad fold instruction")
	ErrNoFolds = errors.New("day13: no fold instructions")
)

// Fold is one instruction: fold along x=Line (Vertical) or y=Line.
type Fold struct {
	Vertical bool
	Line     int
}

func (f Fold) String() string {
	axis := "y"
	if f.Vertical {
		axis = "x"
	}
	return fmt.Sprintf("fold along %s=%d", axis, f.Line)
}

// Sheet is the set of dots plus the folds still to apply.
type Sheet struct {
	Dots  aoc.Grid
	Folds []Fold
}

func Parse(input []byte) (*Sheet, error) {
	secs := aoc.Sections(aoc.Lines(input))
	if len(secs) != 2 {
		return nil, ErrNoFolds
	}
	s := &Sheet{Dots: aoc.Grid{}}
	for _, line := range secs[0] {
		xy, err := aoc.Ints(line, ",")
		if err != nil || len(xy) != 2 || xy[0] < 0 || xy[1] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadDot, line)
		}
		s.Dots[aoc.Pt{X: xy[0], Y: xy[1]}] = dot
	}
	for _, line := range secs[1] {
		rest, ok := strings.CutPrefix(line, "fold along ")
		axis, num, ok2 := strings.Cut(rest, "=")
		if !ok || !ok2 || (axis != "x" && axis != "y") {
			return nil, fmt.Errorf("%w: %q", ErrBadFold, line)
		}
		n, err := aoc.ParseInt(num)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFold, line)
		}
		s.Folds = append(s.Folds, Fold{Vertical: axis == "x", Line: n})
	}
	return s, nil
}

// Apply folds dots along f, mirroring every dot past the line back over
// it. Dots on the line stay where they are. Dots that land on the same
// spot merge. A new grid is returned.
func Apply(dots aoc.Grid, f Fold) aoc.Grid {
	out := make(aoc.Grid, len(dots))
	for p, r := range dots {
		c := &p.Y
		if f.Vertical {
			c = &p.X
		}
		if *c > f.Line {
			*c = 2*f.Line - *c
		}
		out[p] = r
	}
	return out
}

// FoldAll applies every fold in order and returns the dot count after
// each one.
func (s *Sheet) FoldAll() (counts []int, final aoc.Grid) {
	final = s.Dots
	for _, f := range s.Folds {
		final = Apply(final, f)
		counts = append(counts, len(final))
	}
	return counts, final
}

func Solve(input []byte) (aoc.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	counts, final := s.FoldAll()
	var sb strings.Builder
	aoc.MustDo(final.Render(&sb))
	return aoc.Answer{
		Part1:   counts[0],
		Part2:   counts[len(counts)-1],
		Display: sb.String(),
	}, nil
}
