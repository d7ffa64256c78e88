package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grocerapp/grocer/internal/list"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	itemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	noteStyle   = lipgloss.NewStyle().PaddingLeft(4).Faint(true)
	countStyle  = lipgloss.NewStyle().Faint(true)
)

// renderList prints the shopping list grouped by aisle.
func renderList(w io.Writer, l list.List, color bool) {
	header := headerStyle
	item := itemStyle
	note := noteStyle
	count := countStyle
	if !color {
		header = lipgloss.NewStyle()
		item = lipgloss.NewStyle().PaddingLeft(2)
		note = lipgloss.NewStyle().PaddingLeft(4)
		count = lipgloss.NewStyle()
	}

	for _, group := range l.ByCategory() {
		fmt.Fprintln(w, header.Render(title(group.Category.String())))
		for _, it := range group.Items {
			fmt.Fprintln(w, item.Render(fmt.Sprintf("%s %s %s", it.Quantity, it.Unit, it.Name)))
			for _, n := range it.Notes {
				fmt.Fprintln(w, note.Render(n))
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, count.Render(fmt.Sprintf("%d items", len(l.Items))))
}

// title uppercases the first letter of a category name.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// isTerminal reports whether f is attached to a terminal, to decide
// whether styled output is appropriate.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
