package world

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrWrongTerrain = errors.New("wrong terrain for operation")
)

// Grid is the ground layer of a farm. Its dimensions never change after
// construction; cells are mutated in place by Till and Untill.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

type Dimensions struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func newGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

func (g *Grid) Dimensions() Dimensions {
	return Dimensions{Rows: g.rows, Cols: g.cols}
}

func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) At(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.index(p)], true
}

func (g *Grid) Till(p Position) error {
	cell, ok := g.At(p)
	if !ok {
		return fmt.Errorf("till %d,%d: %w", p.Row, p.Col, ErrOutOfBounds)
	}
	if !cell.Tillable() {
		return fmt.Errorf("till %s at %d,%d: %w", cell, p.Row, p.Col, ErrWrongTerrain)
	}
	g.cells[g.index(p)] = CellSoil
	return nil
}

// Untill reverts tilled soil. Callers own the check that no plant stands on p.
func (g *Grid) Untill(p Position) error {
	cell, ok := g.At(p)
	if !ok {
		return fmt.Errorf("untill %d,%d: %w", p.Row, p.Col, ErrOutOfBounds)
	}
	if cell != CellSoil {
		return fmt.Errorf("untill %s at %d,%d: %w", cell, p.Row, p.Col, ErrWrongTerrain)
	}
	g.cells[g.index(p)] = CellUntilled
	return nil
}

// Rows renders the grid back into map-file row strings.
func (g *Grid) Rows() []string {
	out := make([]string, g.rows)
	buf := make([]byte, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf[c] = byte(g.cells[r*g.cols+c])
		}
		out[r] = string(buf)
	}
	return out
}

func (g *Grid) Clone() *Grid {
	out := newGrid(g.rows, g.cols)
	copy(out.cells, g.cells)
	return out
}
