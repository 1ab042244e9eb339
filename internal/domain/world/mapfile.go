package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyMap    = errors.New("map has no rows")
	ErrRaggedMap   = errors.New("map rows differ in length")
	ErrUnknownCell = errors.New("unknown ground code")
)

func ParseMap(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	return NewGridFromRows(rows)
}

func ParseMapString(raw string) (*Grid, error) {
	return ParseMap(strings.NewReader(raw))
}

// NewGridFromRows builds a grid from G/S/U row strings. Trailing blank rows
// are dropped; a blank row in the middle of the map is ragged.
func NewGridFromRows(rows []string) (*Grid, error) {
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	cols := len(rows[0])
	g := newGrid(len(rows), cols)
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrRaggedMap)
		}
		for c := 0; c < cols; c++ {
			cell, ok := ParseCell(row[c])
			if !ok {
				return nil, fmt.Errorf("row %d col %d %q: %w", r, c, row[c], ErrUnknownCell)
			}
			g.cells[r*cols+c] = cell
		}
	}
	return g, nil
}
