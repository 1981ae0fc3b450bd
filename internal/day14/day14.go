// Package day14 solves "Extended Polymerization".
//
// The polymer doubles in length every step, so it is never built.
// Instead a Polymer tracks how many times each adjacent pair occurs;
// inserting C into AB replaces one AB with one AC and one CB.
package day14

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    14,
		Title:  "Extended Polymerization",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 1588, Part2: 2188189693529},
	})
}

var (
	ErrNoTemplate = errors.New("day14: missing polymer template")
	ErrBadRule    = errors.New("day14: bad insertion rule")
)

type pair [2]byte

func (p pair) String() string { return string(p[:]) }

// Rules maps a pair to the element inserted between its two halves.
type Rules map[pair]byte

// Polymer is a polymer reduced to its pair frequencies.
type Polymer struct {
	pairs map[pair]int
	last  byte // never changes, since insertions only go between elements
	steps int
}

// NewPolymer counts the adjacent pairs of template.
func NewPolymer(template string) *Polymer {
	p := &Polymer{pairs: map[pair]int{}}
	for i := 0; i+1 < len(template); i++ {
		p.pairs[pair{template[i], template[i+1]}]++
	}
	if template != "" {
		p.last = template[len(template)-1]
	}
	return p
}

func Parse(input []byte) (*Polymer, Rules, error) {
	secs := aoc.Sections(aoc.Lines(input))
	if len(secs) == 0 || len(secs[0]) != 1 {
		return nil, nil, ErrNoTemplate
	}
	rules := Rules{}
	if len(secs) > 1 {
		for _, line := range secs[1] {
			from, to, ok := strings.Cut(line, " -> ")
			if !ok || len(from) != 2 || len(to) != 1 {
				return nil, nil, fmt.Errorf("%w: %q", ErrBadRule, line)
			}
			rules[pair{from[0], from[1]}] = to[0]
		}
	}
	return NewPolymer(secs[0][0]), rules, nil
}

// Step applies every rule simultaneously once. Pairs without a rule are
// carried over unchanged.
func (p *Polymer) Step(rules Rules) {
	next := make(map[pair]int, len(p.pairs))
	for pr, n := range p.pairs {
		c, ok := rules[pr]
		if !ok {
			next[pr] += n
			continue
		}
		next[pair{pr[0], c}] += n
		next[pair{c, pr[1]}] += n
	}
	p.pairs = next
	p.steps++
}

// Steps returns the number of steps applied so far.
func (p *Polymer) Steps() int { return p.steps }

// Len is the length of the polymer the pairs describe.
func (p *Polymer) Len() int {
	n := 0
	for _, c := range p.pairs {
		n += c
	}
	if p.last != 0 {
		n++
	}
	return n
}

// Elements counts each element. Every element except the final one
// begins exactly one pair.
func (p *Polymer) Elements() map[byte]int {
	counts := map[byte]int{}
	for pr, n := range p.pairs {
		counts[pr[0]] += n
	}
	if p.last != 0 {
		counts[p.last]++
	}
	return counts
}

// Spread is the most common element's count minus the least common one's.
func (p *Polymer) Spread() int {
	counts := maps.Values(p.Elements())
	if len(counts) == 0 {
		return 0
	}
	return slices.Max(counts) - slices.Min(counts)
}

func Solve(input []byte) (aoc.Answer, error) {
	p, rules, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	var ans aoc.Answer
	for p.Steps() < 40 {
		p.Step(rules)
		if p.Steps() == 10 {
			ans.Part1 = p.Spread()
		}
	}
	ans.Part2 = p.Spread()
	return ans, nil
}
