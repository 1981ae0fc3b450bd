// Package day01 solves "Sonar Sweep": counting how often a depth
// measurement, or a sliding-window sum of them, increases.
package day01

import (
	_ "embed"
	"fmt"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    1,
		Title:  "Sonar Sweep",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 7, Part2: 5},
	})
}

// Parse reads one depth per line.
func Parse(input []byte) ([]int, error) {
	var depths []int
	for i, line := range aoc.Lines(input) {
		n, err := aoc.ParseInt(line)
		if err != nil {
			return nil, fmt.Errorf("day01: line %d: %w", i+1, err)
		}
		depths = append(depths, n)
	}
	return depths, nil
}

// CountIncreases reports how many times the sum of window consecutive
// depths grows from one position to the next.
//
// Neighbouring windows share all but one element, so only the entering
// and leaving depths are compared.
func CountIncreases(depths []int, window int) int {
	if window < 1 {
		return 0
	}
	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}

func Solve(input []byte) (aoc.Answer, error) {
	depths, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{
		Part1: CountIncreases(depths, 1),
		Part2: CountIncreases(depths, 3),
	}, nil
}
