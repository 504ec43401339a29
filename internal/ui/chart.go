package ui

import (
	"fmt"
	"math"
	"strings"
)

// ChartPoint is one column of a VerticalBarChart.
type ChartPoint struct {
	Label string
	Value float64
}

// VerticalBarChart draws one column per point on an eleven-row axis. The
// axis top is the largest value rounded up to a multiple of step; each row
// is a tenth of that. Labels are written vertically beneath the axis, one
// character per row.
//
//	  300 │█
//	  270 │█ █
//	  ...
//	      └────
//	       2 2
//	       0 0
func VerticalBarChart(points []ChartPoint, step float64) string {
	if len(points) == 0 {
		return ""
	}
	if step <= 0 {
		step = 10
	}

	maxValue := 0.0
	labelRows := 0
	for _, p := range points {
		maxValue = math.Max(maxValue, p.Value)
		if n := len([]rune(p.Label)); n > labelRows {
			labelRows = n
		}
	}
	scale := math.Ceil(maxValue/step) * step / 10
	if scale == 0 {
		scale = step / 10
	}

	var sb strings.Builder
	for i := 0; i <= 10; i++ {
		level := scale * float64(10-i)
		sb.WriteString(Muted.Render(fmt.Sprintf("%5.0f │", level)))
		for _, p := range points {
			if p.Value >= level {
				sb.WriteString(Accent.Render(BarFull))
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(Muted.Render("      └" + strings.Repeat("─", len(points)*2)))
	sb.WriteString("\n")

	for row := 0; row < labelRows; row++ {
		sb.WriteString("       ")
		for _, p := range points {
			label := []rune(p.Label)
			if row < len(label) {
				sb.WriteRune(label[row])
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
