package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/mdparse/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// Document styles
	Heading  lipgloss.Style
	Bold     lipgloss.Style
	Italic   lipgloss.Style
	Link     lipgloss.Style
	Dim      lipgloss.Style
	QuoteBar lipgloss.Style

	// Chrome styles
	Title   lipgloss.Style
	Divider lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Heading:  lipgloss.NewStyle().Bold(true),
		Bold:     lipgloss.NewStyle().Bold(true),
		Italic:   lipgloss.NewStyle().Italic(true),
		Link:     lipgloss.NewStyle().Underline(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		QuoteBar: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Title:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// PlainStyles returns a StyleManager that renders text unchanged
func PlainStyles() *StyleManager {
	plain := lipgloss.NewStyle()
	return &StyleManager{
		Heading:  plain,
		Bold:     plain,
		Italic:   plain,
		Link:     plain,
		Dim:      plain,
		QuoteBar: plain,
		Title:    plain,
		Divider:  plain,
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	headingColor := parseANSIColor(config.GetColorHeading())
	emphasisColor := parseANSIColor(config.GetColorEmphasis())
	linkColor := parseANSIColor(config.GetColorLink())
	dimColor := parseANSIColor(config.GetColorDim())
	borderColor := lipgloss.Color(config.GetColorBorder())

	s.Heading = lipgloss.NewStyle().Bold(true).Foreground(headingColor)
	s.Bold = lipgloss.NewStyle().Bold(true).Foreground(emphasisColor)
	s.Italic = lipgloss.NewStyle().Italic(true).Foreground(emphasisColor)
	s.Link = lipgloss.NewStyle().Underline(true).Foreground(linkColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
	s.QuoteBar = lipgloss.NewStyle().Foreground(borderColor)

	s.Title = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(headingColor)
	s.Divider = lipgloss.NewStyle().Foreground(borderColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}
