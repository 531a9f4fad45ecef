package tui

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorSurfaceFg  = ac("#434343", "#cecece")
	colorControlBg  = ac("#eeeeee", "#161616")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("#1f1f1f", "#f8f8f8")
	colorMutedFg    = ac("#8a8a8a", "#6c6c6c")
	colorAccentFg   = ac("#005f87", "#5fd7ff")
	colorErrorFg    = ac("#af0000", "#ff5f5f")
	colorDirtyFg    = ac("#af5f00", "#ffaf5f")
	colorOkFg       = ac("#005f00", "#5fd75f")
)

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccentFg)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMutedFg)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorErrorFg)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg)
}

func styleBadge(fg lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(fg)
}
