package cli

import (
	"context"
	"fmt"

	"github.com/alii-alqassab/graphql/internal/charts"
	"github.com/alii-alqassab/graphql/internal/filex"
)

// exportDirName is the subdirectory, under the working directory, that
// receives exported charts.
const exportDirName = "charts"

// pieMaxSlices bounds the pie chart before the "Other" rollup.
const pieMaxSlices = 7

// ensureExportDir and writeExportFile are test seams around the
// filesystem helpers.
var ensureExportDir = filex.EnsureSubDir
var writeExportFile = filex.WriteFile

// Export renders the loaded view model's charts as standalone SVG files.
// Sections without data are skipped with a note rather than producing
// empty documents.
func (a *App) Export(ctx context.Context) error {
	if !a.requireData() {
		return nil
	}

	dir, err := ensureExportDir(exportDirName)
	if err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return err
	}

	exports := []struct {
		name string
		svg  string
	}{
		{"xp-timeline.svg", charts.RenderSparklineSVG(charts.BuildSparkline(a.data.XPTimeline), "XP progression")},
		{"xp-projects.svg", a.renderProjectPie()},
		{"skills-technical.svg", charts.RenderRadarSVG(charts.BuildRadar(a.data.SkillRadar.Technical), "Technical skills")},
		{"skills-technologies.svg", charts.RenderRadarSVG(charts.BuildRadar(a.data.SkillRadar.Technologies), "Technologies")},
	}

	written := 0
	for _, e := range exports {
		if e.svg == "" {
			fmt.Fprintf(a.out, "Skipped %s: no data.\n", e.name)
			continue
		}
		path, err := writeExportFile(dir, e.name, []byte(e.svg))
		if err != nil {
			fmt.Fprintf(a.out, "Export failed: %v\n", err)
			return err
		}
		fmt.Fprintf(a.out, "Wrote %s\n", path)
		written++
	}

	if written == 0 {
		fmt.Fprintln(a.out, "Nothing to export.")
	}
	return nil
}

func (a *App) renderProjectPie() string {
	slices := charts.BuildPieData(a.data.XPByProject, pieMaxSlices)
	if len(slices) == 0 {
		return ""
	}

	total := 0.0
	for _, s := range slices {
		total += s.Value
	}
	return charts.RenderPieSVG(charts.BuildPie(slices, total), "Top XP sources")
}
