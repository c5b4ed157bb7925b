package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"movie-booking-cli/model"
)

func (m appModel) seatPanelView() string {
	movie := m.currentMovie()
	if movie == nil {
		return "No movies in the catalog."
	}
	controls := m.seatControls()
	if len(controls) == 0 {
		return m.movieSelectorView(movie) + "\n\nThis movie has no seats."
	}

	cellWidth := seatCellWidth(controls)
	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleBooked := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Faint(true)
	seatStyleCursor := lipgloss.NewStyle().Reverse(true).Bold(true)

	var b strings.Builder
	b.WriteString(m.movieSelectorView(movie))
	b.WriteString("\n\n")

	booked := 0
	for i, control := range controls {
		if i%m.seatsPerRow == 0 {
			b.WriteString(gridIndent)
		}
		label := strconv.Itoa(control.Number)
		if !control.Enabled {
			booked++
			label = "XX"
		}
		cell := "[" + padCell(label, cellWidth) + "]"
		switch {
		case i == m.cursor:
			cell = seatStyleCursor.Render(cell)
		case control.Enabled:
			cell = seatStyleAvailable.Render(cell)
		default:
			cell = seatStyleBooked.Render(cell)
		}
		b.WriteString(cell)
		if (i+1)%m.seatsPerRow == 0 || i == len(controls)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	columns := min(m.seatsPerRow, len(controls))
	gridWidth := columns*(cellWidth+3) - 1
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))
	screenBar := screenBarBlock(gridWidth, "SCREEN")

	b.WriteString("\n")
	b.WriteString(gridIndent)
	b.WriteString(screenBorderStyle.Render(screenBar.top))
	b.WriteString("\n")
	b.WriteString(gridIndent)
	b.WriteString(screenStyle.Render(screenBar.mid))
	b.WriteString("\n")
	b.WriteString(gridIndent)
	b.WriteString(screenBorderStyle.Render(screenBar.bot))
	b.WriteString("\n\n")

	legend := "Legend: [n] available • [XX] booked • highlighted seat is focused"
	available := len(controls) - booked
	counts := fmt.Sprintf("Available: %d • Booked: %d • Total: %d", available, booked, len(controls))
	return b.String() + hint(legend) + "\n" + hint(counts)
}

func (m appModel) movieSelectorView(movie *model.Movie) string {
	count := len(m.booking.Movies())
	label := lipgloss.NewStyle().Bold(true).Render(movie.String())
	return fmt.Sprintf("Select Movie: ◀ %s ▶ %s", label, hint(fmt.Sprintf("(%d/%d)", m.selected+1, count)))
}

// gridOrigin returns the terminal cell where the first seat control is drawn.
// When the view is taller than the terminal the renderer keeps only the last
// m.height lines, so everything above shifts up by the overflow.
func (m appModel) gridOrigin() (int, int) {
	top := lipgloss.Height(m.headerView()) + 1
	if movie := m.currentMovie(); movie != nil {
		top += lipgloss.Height(m.movieSelectorView(movie)) + 1
	}
	if m.height > 0 {
		top -= max(0, lipgloss.Height(m.View())-m.height)
	}
	return len(gridIndent), top
}

// seatIndexAt maps a screen cell to the index of the seat control drawn there.
func (m appModel) seatIndexAt(x, y, count int) (int, bool) {
	if count == 0 {
		return 0, false
	}
	originX, originY := m.gridOrigin()
	row := y - originY
	if y < 0 || row < 0 || x < originX {
		return 0, false
	}
	stride := seatCellWidth(m.seatControls()) + 3
	col := (x - originX) / stride
	if col >= m.seatsPerRow || (x-originX)%stride == stride-1 {
		return 0, false
	}
	index := row*m.seatsPerRow + col
	if index >= count {
		return 0, false
	}
	return index, true
}

func seatCellWidth(controls []seatControl) int {
	width := 2
	for _, control := range controls {
		if l := len(strconv.Itoa(control.Number)); l > width {
			width = l
		}
	}
	return width
}

func (m appModel) noticeView() string {
	color := lipgloss.Color("2")
	title := "Booked"
	if m.notice.kind == noticeFailure {
		color = lipgloss.Color("203")
		title = "Not Booked"
	}
	headerChip := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(color).
		Padding(0, 2)
	message := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(m.notice.message)

	lines := []string{headerChip.Render(title), "", message}
	if m.notice.detail != "" {
		lines = append(lines, "", hint(m.notice.detail))
	}
	lines = append(lines, "", hint("ENTER ok • ESC back to seats"))

	panelStyle := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(color).
		MarginTop(1)
	if m.width > 56 {
		panelStyle = panelStyle.Width(min(m.width-8, 72))
	}
	panel := panelStyle.Render(strings.Join(lines, "\n"))
	if m.width > 0 {
		panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(panel)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
