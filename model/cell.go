package model

const (
	deadGlyph  = '◻'
	aliveGlyph = '◼'
)

// Cell is the state of one grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Count returns 1 for a live cell and 0 otherwise, for summing neighbors
func (c Cell) Count() uint8 {
	if c == Alive {
		return 1
	}
	return 0
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// Glyph returns the rune used when rendering the cell
func (c Cell) Glyph() rune {
	if c == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

func cellFromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
