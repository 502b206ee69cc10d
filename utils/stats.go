package utils

import "time"

// Stats tracks the progress of a simulation run
type Stats struct {
	Generations    int
	BoardCells     int
	PeakBoardCells int
	Population     int
	PeakPopulation int
	StartTime      time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the state of the board after a generation was computed
func (s *Stats) Update(generation, population, boardCells int) {
	s.Generations = generation
	s.Population = population
	s.BoardCells = boardCells
	s.PeakPopulation = max(s.PeakPopulation, population)
	s.PeakBoardCells = max(s.PeakBoardCells, boardCells)
}

// Elapsed returns the time since the run started
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// Keyvals returns the stats as alternating keys and values, ready for a structured logger
func (s *Stats) Keyvals() []any {
	return []any{
		"generations", s.Generations,
		"population", s.Population,
		"peak_population", s.PeakPopulation,
		"board_cells", s.BoardCells,
		"peak_board_cells", s.PeakBoardCells,
		"elapsed", s.Elapsed().Round(time.Millisecond),
	}
}
