package ui

import (
	"strings"

	"plasmaclean/internal/anim"
)

// View paints the pattern across the whole terminal. Every row is the
// same: the bar sweeps horizontally, so the frame is one row rendered
// once and repeated for the full height.
func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 || m.frame.Width <= 0 {
		return ""
	}
	row := renderRow(m.styles, m.frame)
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// renderRow rasterizes one row of the pattern, batching adjacent
// same-colored columns into single styled segments.
func renderRow(sty Styles, frame anim.PaintInstruction) string {
	var b strings.Builder
	runStart := 0
	runBright := frame.Pattern.BrightAt(0, frame.Offset, frame.Width)
	for x := 1; x <= frame.Width; x++ {
		bright := runBright
		if x < frame.Width {
			bright = frame.Pattern.BrightAt(x, frame.Offset, frame.Width)
		}
		if x == frame.Width || bright != runBright {
			seg := strings.Repeat(" ", x-runStart)
			if runBright {
				b.WriteString(sty.Bar.Render(seg))
			} else {
				b.WriteString(sty.Gap.Render(seg))
			}
			runStart = x
			runBright = bright
		}
	}
	return b.String()
}
