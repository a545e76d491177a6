package charts

import (
	"math"

	"github.com/alii-alqassab/graphql/internal/client/models"
)

const (
	sparkWidth   = 520.0
	sparkHeight  = 220.0
	sparkPadding = 24.0
)

// SparkPoint is one timeline sample placed in chart space.
type SparkPoint struct {
	ID    string
	Label string
	Value float64
	At    Point
}

// SparklineGeometry is a placed XP progression line. FirstLabel and
// LastLabel carry the legend endpoints.
type SparklineGeometry struct {
	Width      float64
	Height     float64
	Padding    float64
	Points     []SparkPoint
	FirstLabel string
	LastLabel  string
}

// BuildSparkline spaces the timeline points evenly across the width and
// scales y to the highest value (at least 1, so a flat zero series stays
// on the baseline instead of dividing by zero). Empty input yields nil.
func BuildSparkline(data []models.TimelinePoint) *SparklineGeometry {
	if len(data) == 0 {
		return nil
	}

	maxValue := 1.0
	for _, p := range data {
		maxValue = math.Max(maxValue, p.Value)
	}

	// A single point still needs a finite step.
	stepX := (sparkWidth - sparkPadding*2) / math.Max(float64(len(data)-1), 1)

	points := make([]SparkPoint, len(data))
	for i, p := range data {
		points[i] = SparkPoint{
			ID:    p.ID,
			Label: p.Label,
			Value: p.Value,
			At: Point{
				X: sparkPadding + stepX*float64(i),
				Y: sparkHeight - sparkPadding - p.Value/maxValue*(sparkHeight-sparkPadding*2),
			},
		}
	}

	return &SparklineGeometry{
		Width:      sparkWidth,
		Height:     sparkHeight,
		Padding:    sparkPadding,
		Points:     points,
		FirstLabel: data[0].Label,
		LastLabel:  data[len(data)-1].Label,
	}
}
