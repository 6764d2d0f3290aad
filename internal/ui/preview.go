package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/mdparse/internal/ast"
)

// previewMode selects what the viewport shows
type previewMode int

const (
	modeOutline previewMode = iota // Styled document
	modeTree                       // Node kinds by depth
)

// previewModel is the Bubble Tea model for browsing a parsed document
type previewModel struct {
	title    string
	doc      ast.Document
	styles   *StyleManager
	mode     previewMode
	viewport viewport.Model
	ready    bool
	width    int
}

// newPreviewModel creates a preview of doc
func newPreviewModel(title string, doc ast.Document, styles *StyleManager) previewModel {
	return previewModel{title: title, doc: doc, styles: styles}
}

// content renders the document for the current mode
func (m previewModel) content() string {
	if m.mode == modeTree {
		return Tree(m.doc, m.styles)
	}
	return Outline(m.doc, m.styles)
}

// Init implements tea.Model
func (m previewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		const chrome = 2 // title + footer
		m.width = msg.Width
		height := maxInt(msg.Height-chrome, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "t", "tab":
			if m.mode == modeTree {
				m.mode = modeOutline
			} else {
				m.mode = modeTree
			}
			if m.ready {
				m.viewport.SetContent(m.content())
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m previewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	mode := "outline"
	if m.mode == modeTree {
		mode = "tree"
	}
	info := fmt.Sprintf("%s • %d blocks • %3.f%%", mode, len(m.doc.Blocks), m.viewport.ScrollPercent()*100)
	help := m.styles.Dim.Render("t toggle • ↑/↓ scroll • q quit")

	title := m.styles.Title.Render(m.title)
	footer := m.styles.Divider.Render(info) + "  " + help
	gap := maxInt(m.width-lipgloss.Width(title), 0)

	var b strings.Builder
	b.WriteString(title + m.styles.Divider.Render(strings.Repeat("─", gap)) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(footer)
	return b.String()
}

// ============================================================================
// Run Preview
// ============================================================================

// getTTY returns file handles for TUI input/output
// Uses /dev/tty when the document itself arrived on a pipe
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	if fileInfo, _ := os.Stdin.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return os.Stdin, os.Stdout, func() {}
	}

	tty, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		return os.Stdin, os.Stdout, func() {}
	}
	return tty, os.Stdout, func() { tty.Close() }
}

// Run opens the full-screen preview of doc
func Run(title string, doc ast.Document) error {
	styles := DefaultStyles()
	styles.LoadFromConfig()

	ttyIn, ttyOut, cleanup := getTTY()
	defer cleanup()

	p := tea.NewProgram(newPreviewModel(title, doc, styles),
		tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithInput(ttyIn), tea.WithOutput(ttyOut))
	_, err := p.Run()
	return err
}

// maxInt returns the larger of a and b
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
