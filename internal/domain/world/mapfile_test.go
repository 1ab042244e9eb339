package world

import (
	"errors"
	"testing"
)

func TestParseMapString(t *testing.T) {
	g, err := ParseMapString("GSU\r\nUUU\n\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := g.Dimensions(), (Dimensions{Rows: 2, Cols: 3}); got != want {
		t.Fatalf("dims mismatch: got=%v want=%v", got, want)
	}
	if cell, _ := g.At(Position{Row: 0, Col: 1}); cell != CellSoil {
		t.Fatalf("expected soil at 0,1, got %s", cell)
	}
	if got := g.Rows(); got[0] != "GSU" || got[1] != "UUU" {
		t.Fatalf("unexpected rows: %v", got)
	}
}

func TestParseMapRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty", raw: "", want: ErrEmptyMap},
		{name: "only blanks", raw: "\n\n", want: ErrEmptyMap},
		{name: "ragged", raw: "GG\nG\n", want: ErrRaggedMap},
		{name: "gap row", raw: "GG\n\nGG\n", want: ErrRaggedMap},
		{name: "unknown code", raw: "GX\n", want: ErrUnknownCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMapString(tc.raw)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error mismatch: got=%v want=%v", err, tc.want)
			}
		})
	}
}
