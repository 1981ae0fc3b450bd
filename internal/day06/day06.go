// Package day06 solves "Lanternfish". Fish are never simulated one by
// one: a School counts how many fish share each timer value.
package day06

import (
	_ "embed"
	"errors"
	"fmt"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    6,
		Title:  "Lanternfish",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 5934, Part2: 26984457539},
	})
}

const (
	resetTimer = 6
	newTimer   = 8
)

var ErrBadTimer = errors.New("day06: timer out of range")

// School buckets fish by days until they next spawn.
type School [newTimer + 1]int

func Parse(input []byte) (School, error) {
	var s School
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return s, nil
	}
	timers, err := aoc.Ints(lines[0], ",")
	if err != nil {
		return s, fmt.Errorf("day06: %w", err)
	}
	for _, t := range timers {
		if t < 0 || t > newTimer {
			return s, fmt.Errorf("%w: %d", ErrBadTimer, t)
		}
		s[t]++
	}
	return s, nil
}

// Tick advances one day: every bucket moves down one slot, and the fish
// that were at zero both restart at 6 and spawn as many new fish at 8.
func (s *School) Tick() {
	spawning := s[0]
	copy(s[:], s[1:])
	s[newTimer] = spawning
	s[resetTimer] += spawning
}

// After returns the school after n days. s itself is unchanged.
func (s School) After(n int) School {
	for range n {
		s.Tick()
	}
	return s
}

func (s School) Len() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

func Solve(input []byte) (aoc.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{Part1: s.After(80).Len(), Part2: s.After(256).Len()}, nil
}
