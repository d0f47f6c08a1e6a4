package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Success is the confirmation line printed after a file is rewritten.
func Success(path string) string {
	return messageStyle.Render("Resolved conflicts in") + " " + pathStyle.Render(path)
}

func Error(err error) string {
	return errorStyle.Render("Error:") + " " + err.Error()
}

// FileSummary labels a conflicted file with its region count.
func FileSummary(path string, regions int) string {
	noun := "regions"
	if regions == 1 {
		noun = "region"
	}
	return fmt.Sprintf("%s %s", pathStyle.Render(path), mutedStyle.Render(fmt.Sprintf("(%d conflict %s)", regions, noun)))
}

// NoMarkers flags a file git still reports as unmerged but that holds no
// conflict markers, usually because it was already fixed by hand.
func NoMarkers(path string) string {
	return pathStyle.Render(path) + " " + mutedStyle.Render("(no conflict markers left, run git add to mark it resolved)")
}

func Muted(s string) string {
	return mutedStyle.Render(s)
}
