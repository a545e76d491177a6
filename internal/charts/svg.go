package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The renderers below serialize built geometry into standalone SVG
// documents for the export command. They carry their own inline styling
// because the exported files must be viewable without the app around.

const (
	svgBackground = "#15151e"
	svgForeground = "#f8fafc"
	svgAccent     = "#dc0000"
	svgGridline   = "rgba(255,255,255,0.15)"
)

// coord formats a chart coordinate; two decimals keep the files diffable.
func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func svgOpen(b *strings.Builder, width, height float64, title string) {
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" role="img" aria-label=%q>`+"\n",
		coord(width), coord(height), title)
	fmt.Fprintf(b, "<title>%s</title>\n", escapeText(title))
	fmt.Fprintf(b, `<rect width="%s" height="%s" fill="%s"/>`+"\n", coord(width), coord(height), svgBackground)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// RenderRadarSVG draws the grid rings, axes, value polygon, value points
// and axis labels. A nil geometry renders an empty string.
func RenderRadarSVG(g *RadarGeometry, title string) string {
	if g == nil {
		return ""
	}

	var b strings.Builder
	svgOpen(&b, g.Size, g.Size, title)

	for _, ring := range g.Rings {
		fmt.Fprintf(&b, `<polygon points="%s" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			polygonPoints(ring), svgGridline)
	}
	for _, axis := range g.Axes {
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			coord(g.Center), coord(g.Center), coord(axis.AxisEnd.X), coord(axis.AxisEnd.Y), svgGridline)
	}

	shape := make([]Point, len(g.Axes))
	for i, axis := range g.Axes {
		shape[i] = axis.Point
	}
	fmt.Fprintf(&b, `<polygon points="%s" fill="rgba(220,0,0,0.25)" stroke="%s" stroke-width="2"/>`+"\n",
		polygonPoints(shape), svgAccent)

	for _, axis := range g.Axes {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="4" fill="%s"/>`+"\n",
			coord(axis.Point.X), coord(axis.Point.Y), svgAccent)
	}
	for _, axis := range g.Axes {
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="%s" dominant-baseline="%s" fill="%s" font-size="12">%s</text>`+"\n",
			coord(axis.LabelAt.X), coord(axis.LabelAt.Y), axis.Anchor, axis.Baseline, svgForeground, escapeText(axis.Label))
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// RenderSparklineSVG draws the baseline, the progression polyline, one
// marker per point, and the first/last date legend.
func RenderSparklineSVG(g *SparklineGeometry, title string) string {
	if g == nil {
		return ""
	}

	var b strings.Builder
	svgOpen(&b, g.Width, g.Height, title)

	fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
		coord(g.Padding), coord(g.Height-g.Padding), coord(g.Width-g.Padding), coord(g.Height-g.Padding), svgGridline)

	shape := make([]Point, len(g.Points))
	for i, p := range g.Points {
		shape[i] = p.At
	}
	fmt.Fprintf(&b, `<polyline fill="none" stroke="%s" stroke-width="3" stroke-linejoin="round" stroke-linecap="round" points="%s"/>`+"\n",
		svgAccent, polygonPoints(shape))

	for _, p := range g.Points {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="4" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			coord(p.At.X), coord(p.At.Y), svgForeground, svgAccent)
	}

	fmt.Fprintf(&b, `<text x="%s" y="%s" fill="%s" font-size="11">%s</text>`+"\n",
		coord(g.Padding), coord(g.Height-6), svgForeground, escapeText(g.FirstLabel))
	fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="end" fill="%s" font-size="11">%s</text>`+"\n",
		coord(g.Width-g.Padding), coord(g.Height-6), svgForeground, escapeText(g.LastLabel))

	b.WriteString("</svg>\n")
	return b.String()
}

// RenderPieSVG draws the decorative tire rings and the dash-array value
// segments, rotated so the first segment starts at twelve o'clock.
func RenderPieSVG(g *PieGeometry, title string) string {
	if g == nil {
		return ""
	}

	var b strings.Builder
	svgOpen(&b, g.Size, g.Size, title)

	c := coord(g.Center)
	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="#1f2937" stroke-width="%s"/>`+"\n",
		c, c, coord(pieRubberRadius), coord(pieRubberStroke))
	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="4"/>`+"\n",
		c, c, coord(pieRubberRadius+pieRubberStroke/2-2), svgGridline)

	fmt.Fprintf(&b, `<g transform="rotate(-90 %s %s)">`+"\n", c, c)
	for _, seg := range g.Segments {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s" stroke-dasharray="%s %s" stroke-dashoffset="%s"/>`+"\n",
			c, c, coord(g.Radius), seg.Color, coord(pieSegmentStroke),
			coord(seg.DashLength), coord(g.Circumference-seg.DashLength), coord(seg.DashOffset))
	}
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="#94a3b8" stroke-width="%s"/>`+"\n",
		c, c, coord(pieRimRadius), coord(pieRimStroke))
	fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="#020617"/>`+"\n",
		c, c, coord(pieHubRadius))

	b.WriteString("</svg>\n")
	return b.String()
}

func polygonPoints(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = coord(p.X) + "," + coord(p.Y)
	}
	return strings.Join(parts, " ")
}
