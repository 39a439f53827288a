package utils

import (
	"time"

	"github.com/guptarohit/asciigraph"
)

// HistoryLimit bounds the population samples kept for charting
const HistoryLimit = 200

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	PopulationHistory    []float64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.PopulationHistory = append(s.PopulationHistory, float64(population))
	if len(s.PopulationHistory) > HistoryLimit {
		s.PopulationHistory = s.PopulationHistory[len(s.PopulationHistory)-HistoryLimit:]
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// PopulationChart plots the recorded population history, or returns "" with fewer than two samples
func (s *Stats) PopulationChart(width, height int) string {
	if len(s.PopulationHistory) < 2 {
		return ""
	}
	return asciigraph.Plot(s.PopulationHistory,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("population"),
	)
}
