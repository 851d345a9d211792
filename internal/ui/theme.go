package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss colors used by prompts and the pager.
type Theme struct {
	Primary       lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	MarkdownStyle string
}

var themes = map[string]Theme{
	"dark": {
		Primary:       lipgloss.Color("15"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		MarkdownStyle: "dark",
	},
	"light": {
		Primary:       lipgloss.Color("0"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		MarkdownStyle: "light",
	},
}

// ResolveTheme picks the theme matching a glamour style name ("dark",
// "light", ...). Unknown styles use the dark palette but keep the style name
// so glamour can still resolve it.
func ResolveTheme(markdownStyle string) Theme {
	if t, ok := themes[markdownStyle]; ok {
		return t
	}
	t := themes["dark"]
	if markdownStyle != "" {
		t.MarkdownStyle = markdownStyle
	}
	return t
}

// DangerStyle returns a bold style in the danger color.
func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Danger)
}

// MutedStyle returns a style for secondary text.
func (t Theme) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}
