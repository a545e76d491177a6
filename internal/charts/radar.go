// Package charts turns the aggregated view model into drawable geometry
// and renders it as standalone SVG documents. The Build* functions are
// pure; they never emit markup themselves.
package charts

import (
	"fmt"
	"math"

	"github.com/alii-alqassab/graphql/internal/client/models"
)

const (
	radarSize        = 360.0
	radarRadius      = 120.0
	radarLabelOffset = 44.0
	radarLevels      = 5
)

// Point is one x/y coordinate pair in chart space.
type Point struct {
	X float64
	Y float64
}

// RadarAxis is the full placement of one radar axis: the value point, the
// axis endpoint on the outer ring, and the label position with its
// SVG-style alignment.
type RadarAxis struct {
	ID       string
	Label    string
	Point    Point
	AxisEnd  Point
	LabelAt  Point
	Anchor   string // text-anchor: start, middle or end
	Baseline string // dominant-baseline: hanging, middle or baseline
}

// RadarGeometry describes one complete radar: the concentric grid rings
// (innermost first) and one placed axis per input value.
type RadarGeometry struct {
	Size   float64
	Center float64
	Rings  [][]Point
	Axes   []RadarAxis
}

// BuildRadar lays the given values out on a fixed-size radar. The value
// scale runs to max(100, highest value), so proficiency charts keep a
// common baseline. Empty or all-zero input has no meaningful shape and
// yields nil.
func BuildRadar(data []models.SkillValue) *RadarGeometry {
	if len(data) == 0 {
		return nil
	}

	values := make([]float64, len(data))
	hasValues := false
	for i, d := range data {
		values[i] = math.Max(d.Value, 0)
		if values[i] > 0 {
			hasValues = true
		}
	}
	if !hasValues {
		return nil
	}

	maxValue := 100.0
	for _, v := range values {
		maxValue = math.Max(maxValue, v)
	}

	center := radarSize / 2
	angleStep := 2 * math.Pi / float64(len(data))
	startAngle := -math.Pi / 2

	axes := make([]RadarAxis, len(data))
	for i, d := range data {
		angle := startAngle + float64(i)*angleStep
		cos, sin := math.Cos(angle), math.Sin(angle)
		valueRadius := values[i] / maxValue * radarRadius

		anchor, baseline := radarLabelAlignment(cos, sin)
		axes[i] = RadarAxis{
			ID:       fmt.Sprintf("%s-%d", d.Label, i),
			Label:    d.Label,
			Point:    Point{center + cos*valueRadius, center + sin*valueRadius},
			AxisEnd:  Point{center + cos*radarRadius, center + sin*radarRadius},
			LabelAt:  Point{center + cos*(radarRadius+radarLabelOffset), center + sin*(radarRadius+radarLabelOffset)},
			Anchor:   anchor,
			Baseline: baseline,
		}
	}

	rings := make([][]Point, radarLevels)
	for level := 0; level < radarLevels; level++ {
		ringRadius := radarRadius / radarLevels * float64(level+1)
		ring := make([]Point, len(data))
		for i := range data {
			angle := startAngle + float64(i)*angleStep
			ring[i] = Point{center + math.Cos(angle)*ringRadius, center + math.Sin(angle)*ringRadius}
		}
		rings[level] = ring
	}

	return &RadarGeometry{Size: radarSize, Center: center, Rings: rings, Axes: axes}
}

// radarLabelAlignment buckets an axis angle into the nine text alignment
// combinations; near-vertical axes center horizontally, near-horizontal
// ones center vertically.
func radarLabelAlignment(cos, sin float64) (anchor, baseline string) {
	switch {
	case math.Abs(cos) < 0.2:
		anchor = "middle"
	case cos > 0:
		anchor = "start"
	default:
		anchor = "end"
	}
	switch {
	case math.Abs(sin) < 0.2:
		baseline = "middle"
	case sin > 0:
		baseline = "hanging"
	default:
		baseline = "baseline"
	}
	return anchor, baseline
}
