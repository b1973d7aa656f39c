package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/runoshun/launchpad/internal/domain"
)

// Colors defines the color palette for list output.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Steam  lipgloss.Color
	PS2    lipgloss.Color
	PS3    lipgloss.Color
	GBA    lipgloss.Color
	Custom lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
	Error:   lipgloss.Color("#D63031"), // Red

	Steam:  lipgloss.Color("#74B9FF"), // Light blue
	PS2:    lipgloss.Color("#0984E3"), // Blue
	PS3:    lipgloss.Color("#A29BFE"), // Lavender
	GBA:    lipgloss.Color("#E84393"), // Pink
	Custom: lipgloss.Color("#B2BEC3"), // Light gray
}

// PlatformColor returns the color for a platform.
func PlatformColor(p domain.Platform) lipgloss.Color {
	switch p {
	case domain.PlatformSteam:
		return Colors.Steam
	case domain.PlatformPS2:
		return Colors.PS2
	case domain.PlatformPS3:
		return Colors.PS3
	case domain.PlatformGBA:
		return Colors.GBA
	default:
		return Colors.Custom
	}
}

// Styles contains the lipgloss styles for list output.
// They are bound to a renderer so that output written to a pipe or file carries no escape codes.
type Styles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Muted    lipgloss.Style
	Favorite lipgloss.Style
	Success  lipgloss.Style
	Border   lipgloss.Style
	renderer *lipgloss.Renderer
}

// newStyles creates styles for output written to w.
func newStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header:   r.NewStyle().Bold(true).Foreground(Colors.Primary).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
		Muted:    r.NewStyle().Foreground(Colors.Muted),
		Favorite: r.NewStyle().Foreground(Colors.Warning),
		Success:  r.NewStyle().Foreground(Colors.Success),
		Border:   r.NewStyle().Foreground(Colors.Muted),
		renderer: r,
	}
}

// Platform returns the style for a platform name.
func (s Styles) Platform(p domain.Platform) lipgloss.Style {
	return s.renderer.NewStyle().Foreground(PlatformColor(p))
}

// newTable creates a table with the shared look.
// platformCol is the index of a column holding platform names, or -1.
func (s Styles) newTable(headers []string, rows [][]string, platformCol int) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			if col == platformCol && row >= 0 && row < len(rows) {
				return s.Platform(domain.Platform(rows[row][col])).Padding(0, 1)
			}
			return s.Cell
		})
}

// printTable renders rows as a table, or a muted message when there are none.
func printTable(w io.Writer, headers []string, rows [][]string, platformCol int, empty string) {
	s := newStyles(w)
	if len(rows) == 0 {
		_, _ = io.WriteString(w, s.Muted.Render(empty)+"\n")
		return
	}
	_, _ = io.WriteString(w, s.newTable(headers, rows, platformCol).String()+"\n")
}
