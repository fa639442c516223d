package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the terminal styles.
type Theme struct {
	Base   lipgloss.Style
	Title  lipgloss.Style
	Work   lipgloss.Style
	Break  lipgloss.Style
	Clock  lipgloss.Style
	Dim    lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Input  lipgloss.Style
}

// DefaultTheme is used unless a caller overrides Model.Theme.
var DefaultTheme = Theme{
	Base:   lipgloss.NewStyle().Margin(1, 2),
	Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	Work:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	Break:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Clock:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")),
	Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Status: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	Input:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(30),
}
