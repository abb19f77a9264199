package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"plasmaclean/internal/anim"
)

type Styles struct {
	Bar lipgloss.Style
	Gap lipgloss.Style
}

func defaultStyles(p anim.Pattern) Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Bar: base.Background(hexColor(p.Bright)),
		Gap: base.Background(hexColor(p.Dark)),
	}
}

func hexColor(c anim.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B)))
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
