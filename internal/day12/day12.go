// Package day12 solves "Passage Pathing": enumerating every path through
// a cave system from start to end under revisit rules.
//
// Caves named in upper case are big and may be visited any number of
// times. Small caves may be visited at most once per path, except that
// in the relaxed mode one small cave, other than start and end, may be
// visited twice. The start cave is never re-entered and reaching end
// completes a path.
//
// The search is a depth-first backtracking walk. Whether the relaxed
// allowance is still available is passed down each call by value, so
// spending it on one branch never leaks into a sibling branch.
package day12

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"

	"aoc2021"
)

//go:embed testdata/sample.txt
var sample []byte

func init() {
	aoc.Register(aoc.Puzzle{
		Day:    12,
		Title:  "Passage Pathing",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 226, Part2: 3509},
	})
}

const (
	Start = "start"
	End   = "end"
)

var (
	ErrBadEdge  = errors.New("day12: bad edge")
	ErrNoStart  = errors.New("day12: no start cave")
	ErrNoEnd    = errors.New("day12: no end cave")
	ErrBigCycle = errors.New("day12: two big caves are connected, paths are unbounded")
)

// Mode selects the revisit rule for small caves.
type Mode int

const (
	// Strict never revisits a small cave.
	Strict Mode = iota
	// OneRevisit lets a single small cave be visited twice per path.
	OneRevisit
)

// IsBig reports whether a cave may be revisited freely.
func IsBig(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

// Caves is an undirected graph from cave name to its neighbours.
// It is not modified after Parse.
type Caves map[string]map[string]bool

func (c Caves) connect(a, b string) {
	if c[a] == nil {
		c[a] = map[string]bool{}
	}
	c[a][b] = true
}

func Parse(input []byte) (Caves, error) {
	c := Caves{}
	for i, line := range aoc.Lines(input) {
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" || a == b {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadEdge, i+1, line)
		}
		if IsBig(a) && IsBig(b) {
			return nil, fmt.Errorf("%w: %s-%s", ErrBigCycle, a, b)
		}
		c.connect(a, b)
		c.connect(b, a)
	}
	if _, ok := c[Start]; !ok {
		return nil, ErrNoStart
	}
	if _, ok := c[End]; !ok {
		return nil, ErrNoEnd
	}
	return c, nil
}

// Names returns the cave names in sorted order.
func (c Caves) Names() []string {
	names := maps.Keys(c)
	slices.Sort(names)
	return names
}

// walker carries the search state of one enumeration.
type walker struct {
	caves  Caves
	path   []string
	onPath map[string]int
	found  map[string][]string
}

// walk extends the current path to from. spare reports whether the
// one-revisit allowance is still unspent on this branch.
func (w *walker) walk(from string, spare bool) {
	w.path = append(w.path, from)
	w.onPath[from]++
	defer func() {
		w.path = w.path[:len(w.path)-1]
		w.onPath[from]--
	}()

	if from == End {
		key := strings.Join(w.path, ",")
		if _, dup := w.found[key]; !dup {
			w.found[key] = slices.Clone(w.path)
		}
		return
	}
	for next := range w.caves[from] {
		switch {
		case next == Start:
		case IsBig(next) || w.onPath[next] == 0:
			w.walk(next, spare)
		case spare && next != End:
			w.walk(next, false)
		}
	}
}

// Paths returns every distinct path from start to end under mode, sorted.
func (c Caves) Paths(mode Mode) [][]string {
	w := &walker{
		caves:  c,
		onPath: map[string]int{},
		found:  map[string][]string{},
	}
	w.walk(Start, mode == OneRevisit)

	keys := maps.Keys(w.found)
	slices.Sort(keys)
	paths := make([][]string, len(keys))
	for i, k := range keys {
		paths[i] = w.found[k]
	}
	return paths
}

// Count is the number of distinct paths under mode.
func (c Caves) Count(mode Mode) int {
	return len(c.Paths(mode))
}

func Solve(input []byte) (aoc.Answer, error) {
	c, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{Part1: c.Count(Strict), Part2: c.Count(OneRevisit)}, nil
}
