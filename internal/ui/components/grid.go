package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// GridCell is one selectable cell in a numbered grid.
type GridCell struct {
	Number    int
	Completed bool
}

// Grid is a keyboard-navigable grid of numbered cells, used for the
// 1..100 part picker.
type Grid struct {
	Cells    []GridCell
	Columns  int
	Selected int
}

// NewGrid creates a grid with the given cells and column count.
func NewGrid(cells []GridCell, columns int) Grid {
	if columns < 1 {
		columns = 1
	}
	return Grid{Cells: cells, Columns: columns}
}

// Move shifts the selection by the given delta in rows and columns,
// clamping at the edges.
func (g *Grid) Move(drow, dcol int) {
	next := g.Selected + drow*g.Columns + dcol
	if next < 0 || next >= len(g.Cells) {
		return
	}
	// Horizontal moves must not wrap to the adjacent row.
	if dcol != 0 && next/g.Columns != g.Selected/g.Columns {
		return
	}
	g.Selected = next
}

// Current returns the selected cell.
func (g Grid) Current() GridCell {
	if g.Selected < 0 || g.Selected >= len(g.Cells) {
		return GridCell{}
	}
	return g.Cells[g.Selected]
}

// View renders the grid with completion badges.
func (g Grid) View() string {
	var b strings.Builder
	for i, cell := range g.Cells {
		label := fmt.Sprintf("%3d", cell.Number)
		badge := " "
		if cell.Completed {
			badge = "✓"
		}
		text := fmt.Sprintf(" %s%s ", label, badge)

		switch {
		case i == g.Selected:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(text))
		case cell.Completed:
			b.WriteString(theme.Completed.Render(text))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(text))
		}

		if (i+1)%g.Columns == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// CardFrame wraps content in a rounded-border card at the given width.
func CardFrame(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
