package world

type Cell byte

const (
	CellGrass    Cell = 'G'
	CellSoil     Cell = 'S'
	CellUntilled Cell = 'U'
)

func ParseCell(b byte) (Cell, bool) {
	switch Cell(b) {
	case CellGrass, CellSoil, CellUntilled:
		return Cell(b), true
	default:
		return 0, false
	}
}

// String returns the ground name used for asset lookup.
func (c Cell) String() string {
	switch c {
	case CellGrass:
		return "grass"
	case CellSoil:
		return "soil"
	case CellUntilled:
		return "untilled_soil"
	default:
		return "unknown"
	}
}

func (c Cell) Tillable() bool {
	return c == CellUntilled
}

func (c Cell) Plantable() bool {
	return c == CellSoil
}
