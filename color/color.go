// Package color provides the small ANSI palette used by console output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
)

var (
	HiRed    = New("9")
	HiPurple = New("13")
)

// Gray is used for secondary information such as URLs in previews.
var Gray = New("#808080")
