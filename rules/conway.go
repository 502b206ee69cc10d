package rules

/*
ApplyConwayRules returns the next state of a cell under the classic B3/S23 rule.

A live cell survives with 2 or 3 live neighbours, a dead cell is born with
exactly 3, every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
