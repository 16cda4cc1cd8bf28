// Package style provides a functional API for composing lipgloss styles on console output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vidharvest/vidharvest/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Heading renders section titles of the extraction report.
var Heading = func(s string) string {
	return New().Bold(true).Foreground(color.HiPurple).Render(s)
}
