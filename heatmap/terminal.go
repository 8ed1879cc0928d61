package heatmap

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/sartorproj/latticecorr/stats"
)

const legendSteps = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	sparkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
)

// RenderTerminal draws m as a grid of coloured two-column cells with
// 1-based time step labels and a colour legend.
func RenderTerminal(m *stats.CorrelationMatrix, opts *Options) string {
	if m == nil {
		return ""
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	sc := newScale(m, opts.FixedScale)
	n := m.Size()

	var b strings.Builder
	b.WriteString(titleStyle.Render(Title(m.RowLabel(), m.ColLabel())))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render("rows: " + YLabel(m.RowLabel())))
	b.WriteString("\n")
	b.WriteString(axisStyle.Render("cols: " + XLabel(m.ColLabel())))
	b.WriteString("\n\n")

	b.WriteString("    ")
	for j := 0; j < n; j++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%2d", j+1)))
	}
	b.WriteString("\n")

	for i := 0; i < n; i++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%3d ", i+1)))
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				b.WriteString(nanStyle.Render("··"))
				continue
			}
			bg := lipgloss.Color(hex(cool(sc.norm(v))))
			b.WriteString(lipgloss.NewStyle().Background(bg).Render("  "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(axisStyle.Render(fmt.Sprintf("%6.2f ", sc.min)))
	for k := 0; k < legendSteps; k++ {
		t := float64(k) / float64(legendSteps-1)
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex(cool(t)))).Render(" "))
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf(" %.2f", sc.max)))
	b.WriteString("\n")

	return b.String()
}

// Sparkline draws values as a width x height sparkline. NaN values are
// skipped.
func Sparkline(values []float64, width, height int) string {
	spark := sparkline.New(width, height)
	pushed := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		spark.Push(v)
		pushed++
	}
	if pushed == 0 {
		return nanStyle.Render(fmt.Sprintf("%*s", width, "no data"))
	}
	spark.Draw()
	return sparkStyle.Render(spark.View())
}
