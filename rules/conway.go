package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

The cases are checked in order:
  - alive with fewer than 2 neighbors dies (underpopulation)
  - alive with 2 or 3 neighbors survives
  - alive with more than 3 neighbors dies (overpopulation)
  - dead with exactly 3 neighbors is born
  - anything else keeps its state
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	}
	return alive
}
