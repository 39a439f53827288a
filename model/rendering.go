package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const clearScreen = "\033[H\033[2J"

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

// Render returns the grid as text, one line per row, each row ending in a newline
func (g *Grid) Render() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width*len(string(aliveGlyph)) + 1))
	for row := range g.height {
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			sb.WriteRune(c.Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *Grid) String() string {
	return g.Render()
}

// TerminalRenderer draws grids to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// Display writes the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Fprint(r.Out, g.Render())
}

// Status writes a highlighted status line
func (r *TerminalRenderer) Status(format string, args ...any) {
	fmt.Fprintln(r.Out, statusStyle.Render(fmt.Sprintf(format, args...)))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, clearScreen)
}
