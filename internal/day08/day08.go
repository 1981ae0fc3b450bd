// Package day08 solves "Seven Segment Search".
//
// Each display has its segment wires scrambled. The ten unique patterns
// it shows are enough to tell which pattern is which digit: 1, 4, 7 and 8
// have unique segment counts, and the remaining six digits fall out of
// subset relations against those.
package day08

import (
	_ "embed"
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    8,
		Title:  "Seven Segment Search",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 26, Part2: 61229},
	})
}

var (
	ErrBadEntry   = errors.New("day08: malformed entry")
	ErrUndecoded  = errors.New("day08: patterns do not describe ten digits")
	ErrUnknownOut = errors.New("day08: output pattern matches no digit")
)

// Segments is a set of lit wires a..g as bits 0..6.
type Segments uint8

func parseSegments(s string) (Segments, error) {
	var m Segments
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("bad wire %q in %q", c, s)
		}
		m |= 1 << (c - 'a')
	}
	return m, nil
}

func (s Segments) Len() int { return bits.OnesCount8(uint8(s)) }

// Contains reports whether every segment of o is lit in s.
func (s Segments) Contains(o Segments) bool { return s&o == o }

// Entry is one line of notes: the ten patterns and the four-digit output.
type Entry struct {
	Patterns [10]Segments
	Output   [4]Segments
}

func Parse(input []byte) ([]Entry, error) {
	var entries []Entry
	for i, line := range aoc.Lines(input) {
		pats, outs, ok := strings.Cut(line, "|")
		pf, of := strings.Fields(pats), strings.Fields(outs)
		if !ok || len(pf) != 10 || len(of) != 4 {
			return nil, fmt.Errorf("%w: line %d", ErrBadEntry, i+1)
		}
		var e Entry
		for j, f := range pf {
			s, err := parseSegments(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadEntry, i+1, err)
			}
			e.Patterns[j] = s
		}
		for j, f := range of {
			s, err := parseSegments(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadEntry, i+1, err)
			}
			e.Output[j] = s
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// EasyDigits counts output digits that are a 1, 4, 7 or 8, which are the
// only ones identifiable by segment count alone.
func (e Entry) EasyDigits() int {
	n := 0
	for _, o := range e.Output {
		switch o.Len() {
		case 2, 3, 4, 7:
			n++
		}
	}
	return n
}

// Deduce works out which pattern shows which digit. The result is
// indexed by digit.
func (e Entry) Deduce() ([10]Segments, error) {
	var (
		digit [10]Segments
		five  []Segments // 2, 3, 5
		six   []Segments // 0, 6, 9
	)
	for _, p := range e.Patterns {
		switch p.Len() {
		case 2:
			digit[1] = p
		case 3:
			digit[7] = p
		case 4:
			digit[4] = p
		case 7:
			digit[8] = p
		case 5:
			five = append(five, p)
		case 6:
			six = append(six, p)
		}
	}
	if digit[1] == 0 || digit[4] == 0 || digit[7] == 0 || digit[8] == 0 || len(five) != 3 || len(six) != 3 {
		return digit, ErrUndecoded
	}
	for _, p := range six {
		switch {
		case p.Contains(digit[4]):
			digit[9] = p
		case p.Contains(digit[1]):
			digit[0] = p
		default:
			digit[6] = p
		}
	}
	for _, p := range five {
		switch {
		case p.Contains(digit[1]):
			digit[3] = p
		case digit[6].Contains(p):
			digit[5] = p
		default:
			digit[2] = p
		}
	}
	seen := map[Segments]bool{}
	for _, d := range digit {
		if d == 0 || seen[d] {
			return digit, ErrUndecoded
		}
		seen[d] = true
	}
	return digit, nil
}

// Value decodes the four output digits into a number.
func (e Entry) Value() (int, error) {
	digit, err := e.Deduce()
	if err != nil {
		return 0, err
	}
	v := 0
	for _, o := range e.Output {
		d := -1
		for n, s := range digit {
			if s == o {
				d = n
				break
			}
		}
		if d < 0 {
			return 0, ErrUnknownOut
		}
		v = v*10 + d
	}
	return v, nil
}

func Solve(input []byte) (aoc.Answer, error) {
	entries, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	var ans aoc.Answer
	for i, e := range entries {
		ans.Part1 += e.EasyDigits()
		v, err := e.Value()
		if err != nil {
			return aoc.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		ans.Part2 += v
	}
	return ans, nil
}
