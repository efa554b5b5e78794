package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fixed chart geometry. Height grows with the number of bars.
const (
	chartWidth   = 800
	barHeight    = 22
	barGap       = 10
	marginLeft   = 220
	marginTop    = 50
	marginRight  = 40
	marginBottom = 40
)

// RenderSVG writes the chart as a standalone SVG document with one
// horizontal bar per point. Output is deterministic for a given config.
func RenderSVG(w io.Writer, cfg *ChartConfig) error {
	if cfg == nil || len(cfg.Points) == 0 {
		return fmt.Errorf("nothing to render: chart has no points")
	}

	height := marginTop + len(cfg.Points)*(barHeight+barGap) + marginBottom

	maxVal := 0.0
	for _, p := range cfg.Points {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}
	scale := float64(chartWidth-marginLeft-marginRight) / maxVal

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		chartWidth, height, chartWidth, height)
	b.WriteString("  <rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	fmt.Fprintf(&b, "  <text x=\"%d\" y=\"28\" text-anchor=\"middle\" font-family=\"sans-serif\" font-size=\"16\">%s</text>\n",
		chartWidth/2, escapeXML(cfg.Title))

	for i, p := range cfg.Points {
		y := marginTop + i*(barHeight+barGap)
		color := DefaultPalette[0]
		if len(cfg.Colors) > 0 {
			color = cfg.Colors[i%len(cfg.Colors)]
		}
		barW := p.Value * scale
		if barW < 0 {
			barW = 0
		}
		fmt.Fprintf(&b, "  <text x=\"%d\" y=\"%d\" text-anchor=\"end\" font-family=\"sans-serif\" font-size=\"12\">%s</text>\n",
			marginLeft-8, y+barHeight-7, escapeXML(p.Label))
		fmt.Fprintf(&b, "  <rect x=\"%d\" y=\"%d\" width=\"%.1f\" height=\"%d\" fill=\"%s\"/>\n",
			marginLeft, y, barW, barHeight, color)
		fmt.Fprintf(&b, "  <text x=\"%.1f\" y=\"%d\" font-family=\"sans-serif\" font-size=\"12\">%s</text>\n",
			float64(marginLeft)+barW+6, y+barHeight-7, formatChartValue(p.Value))
	}

	fmt.Fprintf(&b, "  <text x=\"%d\" y=\"%d\" text-anchor=\"middle\" font-family=\"sans-serif\" font-size=\"13\">%s</text>\n",
		chartWidth/2, height-14, escapeXML(cfg.XLabel))
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// formatChartValue renders a value with the fewest digits that round-trip.
func formatChartValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeXML escapes the five XML special characters in text content.
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
