// Package day07 solves "The Treachery of Whales": choosing the position
// that costs crabs the least fuel to line up on.
package day07

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"slices"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    7,
		Title:  "The Treachery of Whales",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 37, Part2: 168},
	})
}

var ErrNoCrabs = errors.New("day07: no crabs")

// Crabs maps a horizontal position to the number of crabs on it.
type Crabs map[int]int

func Parse(input []byte) (Crabs, error) {
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return nil, ErrNoCrabs
	}
	pos, err := aoc.Ints(lines[0], ",")
	if err != nil {
		return nil, fmt.Errorf("day07: %w", err)
	}
	if len(pos) == 0 {
		return nil, ErrNoCrabs
	}
	c := Crabs{}
	for _, p := range pos {
		c[p]++
	}
	return c, nil
}

// CostFunc is the fuel one crab burns moving dist steps.
type CostFunc func(dist int) int

// Linear burns one unit per step.
func Linear(dist int) int { return dist }

// Triangular burns one more unit for each further step.
func Triangular(dist int) int { return dist * (dist + 1) / 2 }

// Fuel is the total cost for every crab to move to target.
func (c Crabs) Fuel(target int, cost CostFunc) int {
	total := 0
	for p, n := range c {
		total += n * cost(aoc.AbsInt(p, target))
	}
	return total
}

// MinFuel tries every position between the outermost crabs and returns
// the cheapest total.
func (c Crabs) MinFuel(cost CostFunc) int {
	var positions []int
	for p := range c {
		positions = append(positions, p)
	}
	best := math.MaxInt
	for t := slices.Min(positions); t <= slices.Max(positions); t++ {
		best = min(best, c.Fuel(t, cost))
	}
	return best
}

func Solve(input []byte) (aoc.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{Part1: c.MinFuel(Linear), Part2: c.MinFuel(Triangular)}, nil
}
