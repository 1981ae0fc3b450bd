// Package day10 solves "Syntax Scoring": classifying lines of nested
// brackets as corrupted or incomplete, and scoring each kind.
package day10

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    10,
		Title:  "Syntax Scoring",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 26397, Part2: 288957},
	})
}

var (
	ErrUnknownGlyph = errors.New("day10: unknown glyph")
	ErrUnopened     = errors.New("day10: closing glyph with nothing open")
	ErrNoIncomplete = errors.New("day10: no incomplete lines")
)

// closer maps each opening glyph to the glyph that closes it.
var closer = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

var (
	corruptPoints  = map[rune]int{')': 3, ']': 57, '}': 1197, '>': 25137}
	completePoints = map[rune]int{')': 1, ']': 2, '}': 3, '>': 4}
)

type Status int

const (
	Complete Status = iota
	Corrupted
	Incomplete
)

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Corrupted:
		return "corrupted"
	case Incomplete:
		return "incomplete"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result classifies one line.
type Result struct {
	Status Status

	// Illegal is the first closing glyph that did not match, for
	// corrupted lines.
	Illegal rune

	// Completion is the closing glyphs that finish an incomplete line.
	Completion string
}

// Check scans line with a stack of open brackets.
func Check(line string) (Result, error) {
	var stack []rune
	for _, r := range line {
		if c, ok := closer[r]; ok {
			stack = append(stack, c)
			continue
		}
		if _, ok := corruptPoints[r]; !ok {
			return Result{}, fmt.Errorf("%w %q", ErrUnknownGlyph, r)
		}
		if len(stack) == 0 {
			return Result{}, fmt.Errorf("%w: %q", ErrUnopened, r)
		}
		want := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if r != want {
			return Result{Status: Corrupted, Illegal: r}, nil
		}
	}
	if len(stack) == 0 {
		return Result{Status: Complete}, nil
	}
	slices.Reverse(stack)
	return Result{Status: Incomplete, Completion: string(stack)}, nil
}

// ErrorScore is the syntax error score of a corrupted line, 0 otherwise.
func (r Result) ErrorScore() int {
	if r.Status != Corrupted {
		return 0
	}
	return corruptPoints[r.Illegal]
}

// CompletionScore folds the completion glyphs as total*5 + points.
func (r Result) CompletionScore() int {
	total := 0
	for _, c := range r.Completion {
		total = total*5 + completePoints[c]
	}
	return total
}

// Scores returns the total syntax error score and the middle completion
// score over all lines. There must be an odd number of incomplete lines.
func Scores(lines []string) (errScore, middle int, err error) {
	var completions []int
	for i, l := range lines {
		res, err := Check(l)
		if err != nil {
			return 0, 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		errScore += res.ErrorScore()
		if res.Status == Incomplete {
			completions = append(completions, res.CompletionScore())
		}
	}
	if len(completions) == 0 {
		return errScore, 0, ErrNoIncomplete
	}
	slices.Sort(completions)
	return errScore, completions[len(completions)/2], nil
}

func Solve(input []byte) (aoc.Answer, error) {
	e, m, err := Scores(aoc.Lines(input))
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{Part1: e, Part2: m}, nil
}
