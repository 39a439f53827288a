// Package ui runs the simulation in an interactive terminal view.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	gridStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// TickMsg advances the simulation by one generation
type TickMsg time.Time

// Model is the bubbletea model driving a grid
type Model struct {
	config     utils.Config
	grid       *model.Grid
	pool       *model.CellPool
	stats      *utils.Stats
	generation int
	restarts   int
	paused     bool
	lastFrame  time.Time
}

// New builds a live view for the configured grid
func New(config utils.Config) (Model, error) {
	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return Model{}, errors.Wrap(err, "[ui.New] failed to create grid")
	}
	if err = grid.ResetWithPattern(config, 0); err != nil {
		return Model{}, errors.Wrap(err, "[ui.New] failed to seed grid")
	}

	var pool *model.CellPool
	if config.UseCellPool {
		pool = model.NewCellPool()
	}

	return Model{
		config:    config,
		grid:      grid,
		pool:      pool,
		stats:     utils.NewStats(),
		lastFrame: time.Now(),
	}, nil
}

// Generation returns the number of generations computed so far
func (m Model) Generation() int { return m.generation }

// Paused reports whether ticks are currently ignored
func (m Model) Paused() bool { return m.paused }

// Grid exposes the simulated grid
func (m Model) Grid() *model.Grid { return m.grid }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.config.FrameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p":
			m.paused = !m.paused
		case "n":
			if m.paused {
				m.advance()
			}
		case "r":
			m.restarts++
			// the pattern was validated in New
			_ = m.grid.ResetWithPattern(m.config, m.restarts)
			m.generation = 0
		}
		return m, nil

	case TickMsg:
		if !m.paused {
			m.advance()
		}
		if m.config.MaxGenerations > 0 && m.generation >= m.config.MaxGenerations {
			m.paused = true
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	m.grid.NextGeneration(m.config, m.pool)
	m.generation++

	now := time.Now()
	m.stats.Update(m.generation, m.grid.CountLivingCells(), now.Sub(m.lastFrame))
	m.lastFrame = now
}

func (m Model) View() string {
	var sb strings.Builder

	title := fmt.Sprintf("torus-gol  %dx%d  %s", m.grid.Width(), m.grid.Height(), m.config.Pattern)
	if m.paused {
		title += "  " + pausedStyle.Render("PAUSED")
	}
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	living := m.grid.CountLivingCells()
	statsView := strings.Join([]string{
		row("generation", fmt.Sprintf("%d", m.generation)),
		row("living", fmt.Sprintf("%d", living)),
		row("density", fmt.Sprintf("%.1f%%", float64(living)/float64(m.grid.Width()*m.grid.Height())*100)),
		row("gen/sec", fmt.Sprintf("%.1f", m.stats.GenerationsPerSecond)),
		row("avg pop", fmt.Sprintf("%.1f", m.stats.AveragePopulation)),
	}, "\n")
	if chart := m.stats.PopulationChart(30, 4); chart != "" {
		statsView += "\n" + graphStyle.Render(chart)
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, gridStyle.Render(m.grid.Render()), statsView))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("p pause • n step • r reset • q quit"))
	return sb.String()
}

// Run starts the live view on the alternate screen and blocks until it exits
func Run(config utils.Config) error {
	m, err := New(config)
	if err != nil {
		return err
	}
	if _, err = tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "[ui.Run] program failed")
	}
	return nil
}
