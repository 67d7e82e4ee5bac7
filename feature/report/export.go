package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"infinity-tools/feature/dataset"
	"infinity-tools/feature/query"
)

// Row is the machine-readable shape of one matched unit, shared by the JSON
// and XLSX exports.
type Row struct {
	ID       int      `json:"id"`
	ISC      string   `json:"isc"`
	Name     string   `json:"name"`
	Factions []string `json:"factions"`
	Reasons  []string `json:"reasons"`
}

// Rows converts matches into export rows, sorted by unit name like the flat
// console report.
func Rows(md dataset.Metadata, matches []query.Match) []Row {
	rows := make([]Row, 0, len(matches))
	for _, m := range matches {
		fnames := make([]string, 0, len(m.Unit.Factions))
		for _, fid := range m.Unit.Factions {
			fnames = append(fnames, md.FactionName(fid))
		}
		rows = append(rows, Row{
			ID:       m.Unit.ID,
			ISC:      m.Unit.ISC,
			Name:     m.Unit.Name,
			Factions: fnames,
			Reasons:  m.Reasons,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// ExportJSON writes the matched units to path as an indented JSON array.
func ExportJSON(path string, md dataset.Metadata, matches []query.Match) error {
	data, err := json.MarshalIndent(Rows(md, matches), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportXLSX writes the matched units to path as a spreadsheet with a single
// Results sheet.
func ExportXLSX(path string, md dataset.Metadata, matches []query.Match) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Unit Name", "ISC", "Factions", "Match Reasons"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return err
	}

	for i, r := range Rows(md, matches) {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.ISC)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), strings.Join(r.Factions, ", "))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), strings.Join(r.Reasons, ", "))
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
