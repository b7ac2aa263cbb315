// Package report moves the five tables in and out of an xlsx workbook,
// one sheet per table named after it, with the JSON field names as the
// header row.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/schema"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Dataset struct {
	Crops             []entities.Crop
	Resources         []entities.CropResource
	MarketTrends      []entities.MarketTrend
	EnvironmentalLogs []entities.EnvironmentalLog
	Labor             []entities.LaborAvailability
}

// Rows counts records per table name.
func (d Dataset) Rows() map[string]int {
	return map[string]int{
		entities.Crop{}.TableName():              len(d.Crops),
		entities.CropResource{}.TableName():      len(d.Resources),
		entities.MarketTrend{}.TableName():       len(d.MarketTrends),
		entities.EnvironmentalLog{}.TableName():  len(d.EnvironmentalLogs),
		entities.LaborAvailability{}.TableName(): len(d.Labor),
	}
}

// WriteWorkbook renders d as xlsx into w.
func WriteWorkbook(w io.Writer, d Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	steps := []func() error{
		func() error { return writeSheet(f, entities.Crop{}.TableName(), schema.CropShape, d.Crops, headerStyle) },
		func() error {
			return writeSheet(f, entities.CropResource{}.TableName(), schema.CropResourceShape, d.Resources, headerStyle)
		},
		func() error {
			return writeSheet(f, entities.MarketTrend{}.TableName(), schema.MarketTrendShape, d.MarketTrends, headerStyle)
		},
		func() error {
			return writeSheet(f, entities.EnvironmentalLog{}.TableName(), schema.EnvironmentalLogShape, d.EnvironmentalLogs, headerStyle)
		},
		func() error {
			return writeSheet(f, entities.LaborAvailability{}.TableName(), schema.LaborAvailabilityShape, d.Labor, headerStyle)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeSheet[T any](f *excelize.File, name string, shape schema.Shape, rows []T, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	fields := shape.Fields()
	header := make([]any, len(fields))
	for i, fld := range fields {
		header[i] = fld.Name
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(fields), 1)
	if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, rec := range rows {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			return err
		}
		vals := make([]any, len(fields))
		for j, fld := range fields {
			vals[j] = m[fld.Name]
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(name, cell, &vals); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i+2, err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(fields))
	return f.SetColWidth(name, "A", lastCol, 18)
}

// ReadWorkbook parses a workbook produced by WriteWorkbook or laid out the
// same way. Missing sheets yield empty tables; every row is checked with
// the record's shape.
func ReadWorkbook(r io.Reader) (Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readDataset(f)
}

func OpenWorkbook(path string) (Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return readDataset(f)
}

func readDataset(f *excelize.File) (Dataset, error) {
	var d Dataset
	var err error
	if d.Crops, err = readSheet[entities.Crop](f, entities.Crop{}.TableName(), schema.CropShape); err != nil {
		return d, err
	}
	if d.Resources, err = readSheet[entities.CropResource](f, entities.CropResource{}.TableName(), schema.CropResourceShape); err != nil {
		return d, err
	}
	if d.MarketTrends, err = readSheet[entities.MarketTrend](f, entities.MarketTrend{}.TableName(), schema.MarketTrendShape); err != nil {
		return d, err
	}
	if d.EnvironmentalLogs, err = readSheet[entities.EnvironmentalLog](f, entities.EnvironmentalLog{}.TableName(), schema.EnvironmentalLogShape); err != nil {
		return d, err
	}
	if d.Labor, err = readSheet[entities.LaborAvailability](f, entities.LaborAvailability{}.TableName(), schema.LaborAvailabilityShape); err != nil {
		return d, err
	}
	return d, nil
}

func readSheet[T any](f *excelize.File, name string, shape schema.Shape) ([]T, error) {
	out := []T{}
	if idx, err := f.GetSheetIndex(name); err != nil || idx == -1 {
		return out, nil
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return out, nil
	}

	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	fields := shape.Fields()
	cols := make([]int, len(fields))
	for i, fld := range fields {
		c, ok := hmap[norm(fld.Name)]
		if !ok {
			return nil, fmt.Errorf("sheet %s missing column %s. Found headers: %v", name, fld.Name, rows[0])
		}
		cols[i] = c
	}

	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}
		get := func(idx int) string {
			if idx < 0 || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		m := make(map[string]any, len(fields))
		for i, fld := range fields {
			if v := get(cols[i]); v != "" {
				m[fld.Name] = cellValue(fld, v)
			}
		}
		b, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		var rec T
		if fe := schema.Decode(shape, b, &rec); fe != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", name, r+2, fe)
		}
		out = append(out, rec)
	}
	return out, nil
}

// cellValue converts a cell to the JSON kind the field expects. Values
// that do not convert are passed through as strings so the shape check
// reports them.
func cellValue(fld schema.Field, s string) any {
	switch fld.Kind {
	case schema.Integer:
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			return x
		}
	case schema.Number:
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			return x
		}
	default:
		if fld.Name == "date" {
			return normalizeDate(s)
		}
		return s
	}
	return s
}

// Cells formatted as dates come back in the sheet's display format.
var dateLayouts = []string{entities.DateLayout, "01-02-06", "1/2/06", "1/2/2006", "2006/01/02"}

func normalizeDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(entities.DateLayout)
		}
	}
	return s
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
