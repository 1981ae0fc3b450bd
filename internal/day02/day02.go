// Package day02 solves "Dive!", steering a submarine by a list of
// forward/down/up commands.
package day02

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
		Day:    2,
		Title:  "Dive!",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 150, Part2: 900},
	})
}

var ErrBadCommand = errors.New("day02: bad command")

type Direction int

const (
	Forward Direction = iota
	Down
	Up
)

var directions = map[string]Direction{
	"forward": Forward,
	"down":    Down,
	"up":      Up,
}

type Command struct {
	Dir   Direction
	Units int
}

func Parse(input []byte) ([]Command, error) {
	var cmds []Command
	for i, line := range aoc.Lines(input) {
		word, num, ok := strings.Cut(line, " ")
		dir, known := directions[word]
		if !ok || !known {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCommand, i+1, line)
		}
		n, err := aoc.ParseInt(num)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadCommand, i+1, err)
		}
		cmds = append(cmds, Command{Dir: dir, Units: n})
	}
	return cmds, nil
}

// Position is where the submarine ends up.
type Position struct {
	Horizontal, Depth int
}

func (p Position) Product() int { return p.Horizontal * p.Depth }

// Steer applies the commands literally: up and down change depth.
func Steer(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		switch c.Dir {
		case Forward:
			p.Horizontal += c.Units
		case Down:
			p.Depth += c.Units
		case Up:
			p.Depth -= c.Units
		}
	}
	return p
}

// SteerWithAim treats up and down as changes to the aim; forward moves
// along it.
func SteerWithAim(cmds []Command) Position {
	var (
		p   Position
		aim int
	)
	for _, c := range cmds {
		switch c.Dir {
		case Forward:
			p.Horizontal += c.Units
			p.Depth += aim * c.Units
		case Down:
			aim += c.Units
		case Up:
			aim -= c.Units
		}
	}
	return p
}

func Solve(input []byte) (aoc.Answer, error) {
	cmds, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{
		Part1: Steer(cmds).Product(),
		Part2: SteerWithAim(cmds).Product(),
	}, nil
}
