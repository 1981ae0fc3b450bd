// Package aoc holds the shared plumbing for the Advent of Code 2021
// solutions: the puzzle registry, input loading, the runner, and the
// small parsing and geometry helpers the days lean on.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Answer is the outcome of one puzzle run.
type Answer struct {
	Part1, Part2 int

	// Display is optional non-numeric output, such as a drawing,
	// for the caller to print after the answers.
	Display string
}

func (a Answer) String() string {
	return fmt.Sprintf("part1=%d part2=%d", a.Part1, a.Part2)
}

// Solver computes both answers of a puzzle from its raw input.
type Solver func(input []byte) (Answer, error)

// Puzzle is a registered day.
type Puzzle struct {
	Day   int
	Title string
	Solve Solver

	// Sample is the example input from the puzzle text and Want the
	// answers it is documented to produce. A nil Sample means the day
	// is run unchecked.
	Sample []byte
	Want   Answer
}

var (
	mu       sync.RWMutex
	puzzles  = map[int]Puzzle{}
	errNoDay = errors.New("aoc: puzzle not registered")
)

// Register adds p to the registry. It is meant to be called from a day
// package's init and panics on a bad or duplicate day.
func Register(p Puzzle) {
	if p.Day <= 0 || p.Solve == nil {
		panic(fmt.Sprintf("aoc: bogus puzzle registration for day %d", p.Day))
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := puzzles[p.Day]; dup {
		panic(fmt.Sprintf("aoc: day %d registered twice", p.Day))
	}
	puzzles[p.Day] = p
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := puzzles[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: day %d", errNoDay, day)
	}
	return p, nil
}

// Days returns the registered days in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	days := make([]int, 0, len(puzzles))
	for d := range puzzles {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Latest returns the highest registered day, or 0 if none are.
func Latest() int {
	days := Days()
	if len(days) == 0 {
		return 0
	}
	return days[len(days)-1]
}

// ParseInt parses s as a base 10 int, ignoring surrounding space.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return n, nil
}

// Ints splits s on sep and parses every non-empty field.
// Runs of sep (as in space-aligned bingo rows) are tolerated.
func Ints(s, sep string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, sep) {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		n, err := ParseInt(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Lines returns the lines of input with surrounding whitespace trimmed.
// Trailing blank lines are dropped; interior ones are kept since several
// formats use them as section separators.
func Lines(input []byte) []string {
	var lines []string
	ForLines(input, func(line string) {
		lines = append(lines, strings.TrimSpace(line))
	})
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ForLines calls onLine for each line of input.
func ForLines(input []byte, onLine func(line string)) {
	ForLinesY(input, func(_ int, line string) { onLine(line) })
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
// Lines of any length are accepted.
func ForLinesY(input []byte, onLine func(y int, line string)) {
	s := bufio.NewScanner(bytes.NewReader(input))
	s.Buffer(nil, max(len(input)+1, bufio.MaxScanTokenSize))
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	// The token limit exceeds the input, so a bytes.Reader cannot fail.
	MustDo(s.Err())
}

// Sections splits lines on blank lines.
func Sections(lines []string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range lines {
		if l == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}
