// Package tui provides the interactive terminal popup for picking a candidate.
package tui

import (
	"context"
	"errors"
	"io"
	"os"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.seanlatimer.dev/pick/internal/picker"
)

var ErrCancelled = errors.New("selection cancelled")

type Options struct {
	Title     string
	Query     string
	Match     picker.MatchMode
	Height    int
	AltScreen bool

	// Input defaults to the program's stdin; Output defaults to stderr so
	// stdout only ever carries the result.
	Input  io.Reader
	Output io.Writer
}

type pickerModel struct {
	sel       *picker.Selector
	keys      keyMap
	help      help.Model
	title     string
	height    int
	altScreen bool
	width     int
	result    string

	top       int // first visible row
	lastClick int // row of the previous click, or -1
}

// ShowPicker runs the popup over candidates and returns the confirmed label.
// Escape, ctrl+c, focus loss and ctx cancellation yield ErrCancelled.
func ShowPicker(ctx context.Context, candidates []string, opts Options) (string, error) {
	sel, err := picker.New(candidates,
		picker.WithMatcher(picker.MatcherFor(opts.Match)),
		picker.WithQuery(opts.Query),
	)
	if err != nil {
		return "", err
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(output),
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}

	program := tea.NewProgram(newPickerModel(sel, opts), programOpts...)
	result, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return "", ErrCancelled
		}
		return "", err
	}

	final := result.(pickerModel)
	if final.sel.Cancelled() || !final.sel.Done() {
		return "", ErrCancelled
	}
	return final.result, nil
}

func newPickerModel(sel *picker.Selector, opts Options) pickerModel {
	height := opts.Height
	if height <= 0 {
		height = defaultListHeight
	}
	return pickerModel{
		sel:       sel,
		keys:      defaultKeyMap(),
		help:      help.New(),
		title:     opts.Title,
		height:    height,
		altScreen: opts.AltScreen,
		lastClick: -1,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.RequestBackgroundColor
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.top, _ = m.window()
	return m, cmd
}

func (m pickerModel) update(msg tea.Msg) (pickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BackgroundColorMsg:
		appStyles = newStyles()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.BlurMsg:
		m.sel.Cancel()
		return m, tea.Quit
	case tea.PasteMsg:
		m.lastClick = -1
		for _, r := range msg.Content {
			if r == '\n' || r == '\r' {
				continue
			}
			m.sel.AppendChar(r)
		}
		return m, nil
	case tea.MouseClickMsg:
		return m.handleClick(msg.Mouse())
	case tea.KeyPressMsg:
		m.lastClick = -1
		return m.handleKey(msg)
	}
	return m, nil
}

func (m pickerModel) handleKey(msg tea.KeyPressMsg) (pickerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.sel.Cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	case key.Matches(msg, m.keys.Up):
		m.sel.MoveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.sel.MoveSelection(1)
	case key.Matches(msg, m.keys.PageUp):
		m.sel.MoveSelection(-m.height)
	case key.Matches(msg, m.keys.PageDown):
		m.sel.MoveSelection(m.height)
	case key.Matches(msg, m.keys.Backspace):
		m.sel.Backspace()
	default:
		for _, r := range msg.Text {
			m.sel.AppendChar(r)
		}
	}
	return m, nil
}

// handleClick highlights the clicked row; a second click on the same row
// confirms it.
func (m pickerModel) handleClick(mouse tea.Mouse) (pickerModel, tea.Cmd) {
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}
	row, ok := m.rowAt(mouse.Y)
	if !ok {
		m.lastClick = -1
		return m, nil
	}
	if row == m.lastClick {
		return m.confirm()
	}
	cursor, _ := m.sel.Selected()
	m.sel.MoveSelection(row - cursor)
	m.lastClick = row
	return m, nil
}

func (m pickerModel) confirm() (pickerModel, tea.Cmd) {
	label, err := m.sel.Confirm()
	if err != nil {
		// nothing highlighted; stay open
		return m, nil
	}
	m.result = label
	return m, tea.Quit
}

// rowAt maps a screen row to a position in the filtered view.
func (m pickerModel) rowAt(y int) (int, bool) {
	start, end := m.window()
	row := start + y - listTop(m.title)
	if row < start || row >= end {
		return 0, false
	}
	return row, true
}

func (m pickerModel) window() (int, int) {
	cursor, ok := m.sel.Selected()
	if !ok {
		cursor = -1
	}
	return visibleWindow(len(m.sel.FilteredIndices()), cursor, m.height, m.top)
}

func (m pickerModel) View() tea.View {
	v := tea.NewView("")
	v.SetContent(m.Content())
	v.AltScreen = m.altScreen
	v.ReportFocus = true
	if m.altScreen {
		// Click rows only line up with the screen when the popup owns it.
		v.MouseMode = tea.MouseModeCellMotion
	}
	if m.title != "" {
		v.WindowTitle = m.title
	}
	return v
}

func (m pickerModel) Content() string {
	cursor, ok := m.sel.Selected()
	if !ok {
		cursor = -1
	}
	return RenderUI(RenderState{
		Title:  m.title,
		Query:  m.sel.Query(),
		Items:  m.sel.Filtered(),
		Total:  len(m.sel.Candidates()),
		Cursor: cursor,
		Offset: m.top,
		Height: m.height,
		Width:  m.width,
		Footer: m.help.ShortHelpView(m.keys.ShortHelp()),
	})
}
