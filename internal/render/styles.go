package render

import "github.com/charmbracelet/lipgloss"

// Impact palette - ember oranges over a scorched neutral base.
var (
	colorEmber  = lipgloss.Color("#FF6B35")
	colorFlame  = lipgloss.Color("#F7931E")
	colorAsh    = lipgloss.Color("#8A8178")
	colorBone   = lipgloss.Color("#EDE3D4")
	colorDanger = lipgloss.Color("#E74C3C")
)

// Styles are the pre-configured lipgloss styles shared by the report
// builders and the CLI.
var Styles = struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Danger  lipgloss.Style
	Muted   lipgloss.Style
	Banner  lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorEmber),
	Section: lipgloss.NewStyle().Bold(true).Foreground(colorFlame),
	Label:   lipgloss.NewStyle().Foreground(colorAsh),
	Value:   lipgloss.NewStyle().Foreground(colorBone),
	Danger:  lipgloss.NewStyle().Bold(true).Foreground(colorDanger),
	Muted:   lipgloss.NewStyle().Foreground(colorAsh),
	Banner: lipgloss.NewStyle().
		Bold(true).
		Foreground(colorEmber).
		Border(lipgloss.DoubleBorder()).
		Padding(0, 2),
}
