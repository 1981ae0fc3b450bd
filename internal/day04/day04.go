// Package day04 solves "Giant Squid": a bingo game against every board
// at once.
//
// Boards are square; their size comes from the first row. Numbers are
// drawn in order, matches are marked on every board still in play, and a
// board wins as soon as one of its rows or columns is fully marked.
package day04

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
		Day:    4,
		Title:  "Giant Squid",
		Solve:  Solve,
		Sample: sample,
		Want:   aoc.Answer{Part1: 4512, Part2: 1924},
	})
}

var (
	ErrNoDraws  = errors.New("day04: no numbers to draw")
	ErrBadBoard = errors.New("day04: malformed board")
	ErrNoWinner = errors.New("day04: draws ran out before a board won")
	ErrNoBoards = errors.New("day04: no boards")
)

// Board is one bingo card.
type Board struct {
	size   int
	cells  []int
	marked []bool
	won    bool
}

func newBoard(rows [][]int) (*Board, error) {
	n := len(rows)
	b := &Board{size: n, cells: make([]int, 0, n*n), marked: make([]bool, n*n)}
	for _, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%w: %d numbers in a row of a %dx%d board", ErrBadBoard, len(r), n, n)
		}
		b.cells = append(b.cells, r...)
	}
	return b, nil
}

// Mark marks n if the board holds it and reports whether the board now
// has a complete row or column.
func (b *Board) Mark(n int) bool {
	for i, v := range b.cells {
		if v != n {
			continue
		}
		b.marked[i] = true
		if b.rowDone(i/b.size) || b.colDone(i%b.size) {
			b.won = true
		}
	}
	return b.won
}

func (b *Board) rowDone(r int) bool {
	for c := 0; c < b.size; c++ {
		if !b.marked[r*b.size+c] {
			return false
		}
	}
	return true
}

func (b *Board) colDone(c int) bool {
	for r := 0; r < b.size; r++ {
		if !b.marked[r*b.size+c] {
			return false
		}
	}
	return true
}

// Unmarked sums the numbers not yet marked.
func (b *Board) Unmarked() int {
	sum := 0
	for i, v := range b.cells {
		if !b.marked[i] {
			sum += v
		}
	}
	return sum
}

// Game is the draw order plus the boards in play.
type Game struct {
	Draws  []int
	Boards []*Board
}

func Parse(input []byte) (*Game, error) {
	secs := aoc.Sections(aoc.Lines(input))
	if len(secs) == 0 || len(secs[0]) != 1 {
		return nil, ErrNoDraws
	}
	draws, err := aoc.Ints(secs[0][0], ",")
	if err != nil {
		return nil, fmt.Errorf("day04: draws: %w", err)
	}
	if len(draws) == 0 {
		return nil, ErrNoDraws
	}
	g := &Game{Draws: draws}
	for bi, sec := range secs[1:] {
		rows := make([][]int, len(sec))
		for i, line := range sec {
			if rows[i], err = aoc.Ints(line, " "); err != nil {
				return nil, fmt.Errorf("%w: board %d: %v", ErrBadBoard, bi+1, err)
			}
		}
		b, err := newBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", bi+1, err)
		}
		g.Boards = append(g.Boards, b)
	}
	if len(g.Boards) == 0 {
		return nil, ErrNoBoards
	}
	return g, nil
}

// Win is a board completing, with its score at that moment.
type Win struct {
	Board int // index into Game.Boards
	Draw  int
	Score int
}

// Play draws every number and returns the wins in the order they happen.
// Boards that have already won are left alone. The game's boards are
// mutated.
func (g *Game) Play() []Win {
	var wins []Win
	for _, n := range g.Draws {
		for i, b := range g.Boards {
			if b.won {
				continue
			}
			if b.Mark(n) {
				wins = append(wins, Win{Board: i, Draw: n, Score: n * b.Unmarked()})
			}
		}
		if len(wins) == len(g.Boards) {
			break
		}
	}
	return wins
}

func Solve(input []byte) (aoc.Answer, error) {
	g, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	wins := g.Play()
	if len(wins) == 0 {
		return aoc.Answer{}, ErrNoWinner
	}
	return aoc.Answer{Part1: wins[0].Score, Part2: wins[len(wins)-1].Score}, nil
}
