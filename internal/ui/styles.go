// Package ui holds the terminal styles shared by interactive commands.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Title renders a top-level heading.
func Title(s string) string { return titleStyle.Render(s) }

// Section renders a section heading.
func Section(s string) string { return sectionStyle.Render(s) }

// Success renders a confirmation line.
func Success(s string) string { return successStyle.Render(s) }

// Dim renders secondary detail.
func Dim(s string) string { return dimStyle.Render(s) }
