package ui

import "github.com/charmbracelet/lipgloss"

// ANSI colors are used so the help output follows the terminal theme.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

const HelpTemplate = `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
`

// TemplateFuncs exposes the styles to cobra help templates.
func TemplateFuncs() map[string]any {
	return map[string]any{
		"StyleTitle": func(s string) string { return TitleStyle.Render(s) },
		"StyleUsage": func(s string) string { return UsageStyle.Render(s) },
		"StyleFlag":  func(s string) string { return FlagStyle.Render(s) },
		"StyleDesc":  func(s string) string { return DescStyle.Render(s) },
	}
}
