package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	defaultListHeight = 10
	defaultWidth      = 60
	maxWidth          = 100

	// border and horizontal padding of the container
	chromeWidth = 4
)

type RenderState struct {
	Title  string
	Query  string
	Items  []string
	Total  int
	Cursor int // position in Items, or -1
	Offset int // first visible row before scrolling to Cursor
	Height int
	Width  int
	Footer string
}

func RenderUI(state RenderState) string {
	width := contentWidth(state.Width)

	lines := []string{}
	if state.Title != "" {
		lines = append(lines, truncateToWidth(getStyles().TitleStyle.Render(state.Title), width))
	}

	prompt := getStyles().PromptStyle.Render(">") + " " + state.Query + "▏"
	lines = append(lines, truncateToWidth(prompt, width))

	count := fmt.Sprintf("%d/%d", len(state.Items), state.Total)
	lines = append(lines, getStyles().CountStyle.Render(count))

	lines = append(lines, renderList(state.Items, state.Cursor, state.Offset, state.Height, width)...)

	if state.Footer != "" {
		lines = append(lines, truncateToWidth(getStyles().FooterStyle.Render(state.Footer), width))
	}

	return getStyles().BorderStyle.Width(width + chromeWidth).Render(strings.Join(lines, "\n"))
}

// listTop is the screen row of the first list entry, counting the top border.
func listTop(title string) int {
	top := 3 // border, prompt, count
	if title != "" {
		top++
	}
	return top
}

func renderList(items []string, cursor, offset, height, width int) []string {
	if height <= 0 {
		height = defaultListHeight
	}
	if len(items) == 0 {
		return []string{getStyles().EmptyStyle.Render("(no matches)")}
	}

	start, end := visibleWindow(len(items), cursor, height, offset)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		mark := " "
		if i == cursor {
			mark = ">"
		}
		line := truncateToWidth(mark+" "+items[i], width)
		if i == cursor {
			line = getStyles().SelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

// visibleWindow returns the [start, end) slice of rows to draw. The window
// starts at offset and scrolls only as far as needed to keep cursor in view.
func visibleWindow(total, cursor, height, offset int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := max(0, min(offset, total-height))
	if cursor >= 0 {
		if cursor < start {
			start = cursor
		}
		if cursor >= start+height {
			start = cursor - height + 1
		}
	}
	return start, start + height
}

func contentWidth(termWidth int) int {
	if termWidth <= 0 {
		return defaultWidth
	}
	width := termWidth - chromeWidth
	if width > maxWidth {
		width = maxWidth
	}
	if width < 10 {
		width = 10
	}
	return width
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
