// Package day09 solves "Smoke Basin": finding the low points of a height
// map and the basins that drain into them.
package day09

import (
	_ "embed"
	"errors"
	"slices"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    9,
		Title:  "Smoke Basin",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 15, Part2: 1134},
	})
}

// wall is the height that bounds basins.
const wall = 9

var ErrFewBasins = errors.New("day09: fewer than three basins")

// orthogonal are the four neighbours that count for low points and basins.
var orthogonal = [...]func(aoc.Pt) aoc.Pt{
	aoc.Pt.North,
	aoc.Pt.East,
	aoc.Pt.South,
	aoc.Pt.West,
}

// HeightMap is a read-only view of the cave floor.
type HeightMap struct {
	g *aoc.ByteGrid
}

func Parse(input []byte) (HeightMap, error) {
	g, err := aoc.ParseDigitGrid(input)
	if err != nil {
		return HeightMap{}, err
	}
	return HeightMap{g: g}, nil
}

func (h HeightMap) At(p aoc.Pt) int { return int(h.g.At(p)) }

// LowPoints returns the cells lower than every neighbour that exists, in
// row-major order. A neighbour of equal height disqualifies a cell.
func (h HeightMap) LowPoints() []aoc.Pt {
	var low []aoc.Pt
	h.g.Points(func(p aoc.Pt, v uint8) {
		foundSmaller := false
		for _, step := range orthogonal {
			if n := step(p); h.g.InBounds(n) && h.g.At(n) <= v {
				foundSmaller = true
				break
			}
		}
		if !foundSmaller {
			low = append(low, p)
		}
	})
	return low
}

// Risk sums one plus the height of every low point.
func (h HeightMap) Risk() int {
	risk := 0
	for _, p := range h.LowPoints() {
		risk += h.At(p) + 1
	}
	return risk
}

// Basins flood from each low point through every orthogonally connected
// cell that is not a wall. A cell belongs to at most one basin: a low
// point already swallowed by an earlier basin does not start its own.
func (h HeightMap) Basins() [][]aoc.Pt {
	seen := make(map[aoc.Pt]bool)
	var basins [][]aoc.Pt
	for _, low := range h.LowPoints() {
		if seen[low] || h.g.At(low) == wall {
			continue
		}
		var basin []aoc.Pt
		stack := []aoc.Pt{low}
		seen[low] = true
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			basin = append(basin, p)
			for _, step := range orthogonal {
				n := step(p)
				if !h.g.InBounds(n) || seen[n] || h.g.At(n) == wall {
					continue
				}
				seen[n] = true
				stack = append(stack, n)
			}
		}
		basins = append(basins, basin)
	}
	return basins
}

// LargestBasins multiplies the sizes of the three largest basins.
func (h HeightMap) LargestBasins() (int, error) {
	var sizes []int
	for _, b := range h.Basins() {
		sizes = append(sizes, len(b))
	}
	if len(sizes) < 3 {
		return 0, ErrFewBasins
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes[0] * sizes[1] * sizes[2], nil
}

func Solve(input []byte) (aoc.Answer, error) {
	h, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	product, err := h.LargestBasins()
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{Part1: h.Risk(), Part2: product}, nil
}
