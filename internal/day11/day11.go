// Package day11 solves "Dumbo Octopus", a grid automaton in which cells
// gain energy each round and flash when it exceeds a threshold.
//
// A round has three phases. Every cell gains one energy. Then the grid is
// scanned repeatedly: any cell above the threshold that has not yet
// flashed this round flashes, giving one energy to each of its up to
// eight neighbours. Scanning stops once a full pass produces no new
// flash, so chains of flashes settle within the round. Finally every cell
// that flashed drops back to zero.
package day11

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
		Day:    11,
		Title:  "Dumbo Octopus",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 1656, Part2: 195},
	})
}

const (
	threshold = 9
	rounds    = 100

	// syncLimit bounds the search for a synchronized flash.
	syncLimit = 10000
)

var ErrNoSync = errors.New("day11: cells never flashed together")

// adjacent are the eight neighbours a flash reaches.
var adjacent = [8]aoc.Pt{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Cavern is the energy grid and the number of rounds played on it.
type Cavern struct {
	energy  *aoc.ByteGrid
	flashed []bool
	round   int
}

// NewCavern starts a cavern from a copy of g.
func NewCavern(g *aoc.ByteGrid) *Cavern {
	return &Cavern{energy: g.Clone(), flashed: make([]bool, g.Len())}
}

func Parse(input []byte) (*aoc.ByteGrid, error) {
	return aoc.ParseDigitGrid(input)
}

// Round is the number of rounds played so far.
func (c *Cavern) Round() int { return c.round }

// Energy returns a snapshot of the grid.
func (c *Cavern) Energy() [][]uint8 { return c.energy.Rows() }

// Step plays one round and returns how many cells flashed in it.
func (c *Cavern) Step() int {
	g := c.energy
	clear(c.flashed)
	g.Points(func(p aoc.Pt, _ uint8) { g.Inc(p) })

	n := 0
	for {
		before := n
		g.Points(func(p aoc.Pt, v uint8) {
			i := g.Index(p)
			if v <= threshold || c.flashed[i] {
				return
			}
			c.flashed[i] = true
			n++
			for _, d := range adjacent {
				if q := p.Add(d); g.InBounds(q) {
					g.Inc(q)
				}
			}
		})
		if n == before {
			break
		}
	}

	g.Points(func(p aoc.Pt, _ uint8) {
		if c.flashed[g.Index(p)] {
			g.Set(p, 0)
		}
	})
	c.round++
	return n
}

// Run plays n rounds and returns the total number of flashes.
func (c *Cavern) Run(n int) int {
	total := 0
	for range n {
		total += c.Step()
	}
	return total
}

// FirstSync plays until every cell flashes in the same round and returns
// that round, counting from 1 at the cavern's start. It gives up after
// limit rounds.
func (c *Cavern) FirstSync(limit int) (int, error) {
	for c.round < limit {
		if c.Step() == c.energy.Len() {
			return c.round, nil
		}
	}
	return 0, fmt.Errorf("%w within %d rounds", ErrNoSync, limit)
}

func Solve(input []byte) (aoc.Answer, error) {
	g, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	total := NewCavern(g).Run(rounds)
	sync, err := NewCavern(g).FirstSync(syncLimit)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{Part1: total, Part2: sync}, nil
}
