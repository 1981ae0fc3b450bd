package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] { return Pt2[T]{p.X + d.X, p.Y + d.Y} }

func (p Pt2[T]) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// AbsInt returns |x-y|.
func AbsInt[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

// Grid is a sparse grid of runes keyed by position.
type Grid map[Pt]rune

func (g Grid) Bounds() (minX, minY, maxX, maxY int) {
	n := 0
	for p := range g {
		if n == 0 {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
		}
		n++
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return
}

// Render writes g to w one row per line, with blank for missing cells.
// Trailing blanks are trimmed from each row.
func (g Grid) Render(w io.Writer) error {
	if len(g) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	minX, minY, maxX, maxY := g.Bounds()
	var row strings.Builder
	for y := minY; y <= maxY; y++ {
		row.Reset()
		for x := minX; x <= maxX; x++ {
			r, ok := g[Pt{x, y}]
			if !ok {
				r = ' '
			}
			row.WriteRune(r)
		}
		fmt.Fprintln(bw, strings.TrimRight(row.String(), " "))
	}
	return bw.Flush()
}

var (
	ErrEmptyGrid      = errors.New("aoc: grid must have at least one row and one column")
	ErrNonRectangular = errors.New("aoc: all grid rows must have the same length")
	ErrBadDigit       = errors.New("aoc: grid cell is not a digit")
)

// ByteGrid stores a rectangular grid of small values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed w×h grid.
func NewByteGrid(w, h int) *ByteGrid {
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// ParseDigitGrid reads one row per non-empty line, one decimal digit per cell.
func ParseDigitGrid(input []byte) (*ByteGrid, error) {
	var rows []string
	for _, line := range Lines(input) {
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := NewByteGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.W {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(row), g.W)
		}
		for x := 0; x < len(row); x++ {
			c := row[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadDigit, c, x, y)
			}
			g.Set(Pt{x, y}, c-'0')
		}
	}
	return g, nil
}

// Index returns the row-major slice index of p.
func (g *ByteGrid) Index(p Pt) int { return p.Y*g.W + p.X }

// InBounds reports whether p lies inside the grid.
func (g *ByteGrid) InBounds(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// At returns the value at p, which must be in bounds.
func (g *ByteGrid) At(p Pt) uint8 { return g.data[g.Index(p)] }

func (g *ByteGrid) Set(p Pt, v uint8) { g.data[g.Index(p)] = v }

// Inc adds one to the value at p and returns the new value.
func (g *ByteGrid) Inc(p Pt) uint8 {
	i := g.Index(p)
	g.data[i]++
	return g.data[i]
}

// Len is the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// Points calls f for every cell in row-major order.
func (g *ByteGrid) Points(f func(p Pt, v uint8)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := Pt{x, y}
			f(p, g.At(p))
		}
	}
}

// Clone returns a deep copy of g.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// Rows returns the grid as a slice of rows, mostly for tests and display.
func (g *ByteGrid) Rows() [][]uint8 {
	rows := make([][]uint8, g.H)
	for y := range rows {
		rows[y] = append([]uint8(nil), g.data[y*g.W:(y+1)*g.W]...)
	}
	return rows
}

func (g *ByteGrid) String() string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fmt.Fprintf(&sb, "%d", g.At(Pt{x, y}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
