package charts

import (
	"math"

	"github.com/alii-alqassab/graphql/internal/client/models"
)

const (
	pieSize          = 240.0
	pieSegmentRadius = 72.0
	pieSegmentStroke = 14.0
	pieGap           = 4.0

	// Decorative tire rings around the segment band.
	pieRubberRadius = 94.0
	pieRubberStroke = 36.0
	pieRimRadius    = 52.0
	pieRimStroke    = 12.0
	pieHubRadius    = 34.0
)

// PieColors is the fixed segment palette, cycled by input index.
var PieColors = []string{
	"#dc0000",
	"#ff8700",
	"#ffd100",
	"#00d2be",
	"#0090ff",
	"#1e41ff",
	"#006f62",
	"#b6babd",
}

// PieSegment is one arc of the ring, expressed as an SVG stroke
// dash-array over the full circumference.
type PieSegment struct {
	Label      string
	Value      float64
	Color      string
	DashLength float64
	DashOffset float64
}

// PieGeometry is a placed pie ring. Circumference belongs to the segment
// radius; each segment's dash gap is Circumference minus its DashLength.
type PieGeometry struct {
	Size          float64
	Center        float64
	Radius        float64
	Circumference float64
	Segments      []PieSegment
}

// BuildPie converts value shares into dash-array arcs around the segment
// ring. Colors are assigned by input position before zero-value filtering,
// so a project keeps its color whether or not its neighbors draw. A
// non-positive total is guarded to 1, leaving every arc at zero length.
func BuildPie(items []models.ProjectXP, total float64) *PieGeometry {
	safeTotal := total
	if safeTotal <= 0 {
		safeTotal = 1
	}
	circumference := 2 * math.Pi * pieSegmentRadius

	segments := make([]PieSegment, 0, len(items))
	offset := 0.0
	for i, item := range items {
		value := math.Max(item.Value, 0)
		if value == 0 {
			continue
		}
		length := value / safeTotal * circumference
		segments = append(segments, PieSegment{
			Label:      item.Label,
			Value:      value,
			Color:      PieColors[i%len(PieColors)],
			DashLength: math.Max(length-pieGap, 0),
			DashOffset: -offset,
		})
		offset += length
	}

	return &PieGeometry{
		Size:          pieSize,
		Center:        pieSize / 2,
		Radius:        pieSegmentRadius,
		Circumference: circumference,
		Segments:      segments,
	}
}

// BuildPieData trims a descending project list to the top maxItems slices
// and rolls the remainder into a single "Other" slice. Zero-valued entries
// are dropped up front.
func BuildPieData(items []models.ProjectXP, maxItems int) []models.ProjectXP {
	normalized := make([]models.ProjectXP, 0, len(items))
	for _, item := range items {
		if item.Value > 0 {
			normalized = append(normalized, item)
		}
	}

	if len(normalized) <= maxItems {
		return normalized
	}

	primary := normalized[:maxItems:maxItems]
	otherTotal := 0.0
	for _, item := range normalized[maxItems:] {
		otherTotal += item.Value
	}
	if otherTotal > 0 {
		primary = append(primary, models.ProjectXP{Label: "Other", Value: otherTotal})
	}
	return primary
}
