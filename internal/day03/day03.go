// Package day03 solves "Binary Diagnostic".
package day03

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    3,
		Title:  "Binary Diagnostic",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 198, Part2: 230},
	})
}

var (
	ErrEmptyReport = errors.New("day03: empty report")
	ErrBadRow      = errors.New("day03: bad row")
)

// Report is a list of equal-width bit strings.
type Report []string

func Parse(input []byte) (Report, error) {
	rows := aoc.Lines(input)
	if len(rows) == 0 {
		return nil, ErrEmptyReport
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width || strings.Trim(r, "01") != "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadRow, i+1, r)
		}
	}
	return Report(rows), nil
}

func (r Report) width() int { return len(r[0]) }

// ones counts the rows with a 1 in column col.
func ones(rows []string, col int) int {
	n := 0
	for _, row := range rows {
		if row[col] == '1' {
			n++
		}
	}
	return n
}

// PowerConsumption multiplies gamma (most common bit per column, ties
// count as 0) by epsilon (its complement).
func (r Report) PowerConsumption() int {
	var gamma, epsilon int
	for col := 0; col < r.width(); col++ {
		gamma <<= 1
		epsilon <<= 1
		if 2*ones(r, col) > len(r) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}
	return gamma * epsilon
}

// rating filters the rows column by column, keeping those matching the
// bit criteria picks, until one row is left.
func (r Report) rating(criteria func(ones, zeros int) byte) int {
	rows := append([]string(nil), r...)
	for col := 0; col < r.width() && len(rows) > 1; col++ {
		n1 := ones(rows, col)
		keep := criteria(n1, len(rows)-n1)
		kept := rows[:0]
		for _, row := range rows {
			if row[col] == keep {
				kept = append(kept, row)
			}
		}
		rows = kept
	}
	return int(aoc.MustGet(strconv.ParseInt(rows[0], 2, 64)))
}

func oxygen(ones, zeros int) byte {
	if ones >= zeros {
		return '1'
	}
	return '0'
}

func scrubber(ones, zeros int) byte {
	if zeros <= ones {
		return '0'
	}
	return '1'
}

// LifeSupport multiplies the oxygen generator and CO2 scrubber ratings.
func (r Report) LifeSupport() int {
	return r.rating(oxygen) * r.rating(scrubber)
}

func Solve(input []byte) (aoc.Answer, error) {
	r, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{Part1: r.PowerConsumption(), Part2: r.LifeSupport()}, nil
}
