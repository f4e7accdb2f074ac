// Package export renders admin statistics as an Excel workbook.
package export

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"nonprofit-cms-backend/internal/domains/about"
	"nonprofit-cms-backend/internal/domains/content"
	"nonprofit-cms-backend/internal/domains/gallery"
	"nonprofit-cms-backend/internal/domains/program"
	"nonprofit-cms-backend/internal/domains/project"
)

// SiteStats bundles per-resource stats for the export endpoint.
type SiteStats struct {
	Content *content.Stats
	Gallery *gallery.Stats
	Program *program.Stats
	Project *project.Stats
	About   *about.Stats
}

// BuildStatsWorkbook writes one sheet per resource plus an overview sheet.
func BuildStatsWorkbook(stats SiteStats) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const overview = "Overview"
	f.SetSheetName("Sheet1", overview)

	writeRows(f, overview, [][]interface{}{
		{"Resource", "Total"},
		{"Content", stats.Content.Total},
		{"Gallery", stats.Gallery.Total},
		{"Programs", stats.Program.Total},
		{"Projects", stats.Project.Total},
		{"About versions", stats.About.Total},
		{},
		{"Exported at", time.Now().Format(time.RFC3339)},
	})

	if _, err := f.NewSheet("Content"); err != nil {
		return nil, fmt.Errorf("create content sheet: %w", err)
	}
	writeRows(f, "Content", [][]interface{}{
		{"Metric", "Value"},
		{"Total", stats.Content.Total},
		{"Draft", stats.Content.Draft},
		{"Published", stats.Content.Published},
		{"Archived", stats.Content.Archived},
		{"Total views", stats.Content.TotalViews},
	})

	if _, err := f.NewSheet("Gallery"); err != nil {
		return nil, fmt.Errorf("create gallery sheet: %w", err)
	}
	galleryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total", stats.Gallery.Total},
		{"Total views", stats.Gallery.TotalViews},
		{"Total likes", stats.Gallery.TotalLikes},
	}
	for _, key := range sortedKeys(stats.Gallery.ByCategory) {
		galleryRows = append(galleryRows, []interface{}{"Category: " + key, stats.Gallery.ByCategory[key]})
	}
	writeRows(f, "Gallery", galleryRows)

	if _, err := f.NewSheet("Programs"); err != nil {
		return nil, fmt.Errorf("create programs sheet: %w", err)
	}
	programRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total", stats.Program.Total},
		{"Active", stats.Program.Active},
		{"Inactive", stats.Program.Inactive},
	}
	for _, key := range sortedKeys(stats.Program.ByType) {
		programRows = append(programRows, []interface{}{"Type: " + key, stats.Program.ByType[key]})
	}
	writeRows(f, "Programs", programRows)

	if _, err := f.NewSheet("Projects"); err != nil {
		return nil, fmt.Errorf("create projects sheet: %w", err)
	}
	writeRows(f, "Projects", [][]interface{}{
		{"Metric", "Value"},
		{"Total", stats.Project.Total},
		{"Active", stats.Project.Active},
		{"Inactive", stats.Project.Inactive},
	})

	if _, err := f.NewSheet("About"); err != nil {
		return nil, fmt.Errorf("create about sheet: %w", err)
	}
	writeRows(f, "About", [][]interface{}{
		{"Metric", "Value"},
		{"Versions", stats.About.Total},
		{"Active", stats.About.Active},
		{"Latest version", stats.About.LatestVersion},
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) {
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		_ = f.SetSheetRow(sheet, cell, &row)
	}
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
