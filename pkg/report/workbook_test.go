package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/navya9866/Smart-agriculture/entities"
)

func sample() Dataset {
	return Dataset{
		Crops: []entities.Crop{{ID: 1, Name: "Wheat", GrowthDurationDays: 120, OptimalTempMin: 15, OptimalTempMax: 25,
			OptimalHumidityMin: 50, OptimalHumidityMax: 70, SoilType: "Loam"}},
		Resources: []entities.CropResource{{ID: 1, CropID: 1, ResourceType: "fertilizer", Name: "Urea 46% N",
			Description: "Nitrogen fertilizer for vegetative growth", ApplicationRate: "50 kg/ha"}},
		MarketTrends:      []entities.MarketTrend{{ID: 1, CropID: 1, Date: "2024-01-01", PricePerTon: 231, MarketName: "Central Market"}},
		EnvironmentalLogs: []entities.EnvironmentalLog{{ID: 1, CropID: 1, Date: "2024-01-01", Temperature: 19, Humidity: 58, GrowthStage: "Vegetative"}},
		Labor:             []entities.LaborAvailability{{ID: 1, Region: "North Plains", Date: "2024-05-01", AvailableWorkers: 150, DailyWage: 40.5}},
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, sample()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"crops", "crop_resources", "market_trends", "environmental_logs", "labor_availability"}, f.GetSheetList())
	header, err := f.GetRows("crops")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "growthDurationDays", "optimalTempMin", "optimalTempMax",
		"optimalHumidityMin", "optimalHumidityMax", "soilType"}, header[0])
	require.NoError(t, f.Close())

	got, err := ReadWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestReadPartialWorkbook(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet("labor_availability")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("labor_availability", "A1", &[]any{"ID", "Region", "Date", "Available Workers", "daily_wage"}))
	require.NoError(t, f.SetSheetRow("labor_availability", "A2", &[]any{7, "East Hills", "5/1/2024", 210, 35}))
	require.NoError(t, f.SetSheetRow("labor_availability", "A4", &[]any{8, "Delta", "2024-06-01", 40, 30}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	d, err := ReadWorkbook(&buf)
	require.NoError(t, err)
	assert.Empty(t, d.Crops)
	assert.NotNil(t, d.Crops)
	require.Len(t, d.Labor, 2)
	assert.Equal(t, entities.LaborAvailability{ID: 7, Region: "East Hills", Date: "2024-05-01", AvailableWorkers: 210, DailyWage: 35}, d.Labor[0])
	assert.Equal(t, "Delta", d.Labor[1].Region)
	assert.Equal(t, 2, d.Rows()["labor_availability"])
}

func TestReadRejectsBadRows(t *testing.T) {
	build := func(rows ...[]any) *bytes.Buffer {
		f := excelize.NewFile()
		_, err := f.NewSheet("market_trends")
		require.NoError(t, err)
		for i, r := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, f.SetSheetRow("market_trends", cell, &r))
		}
		var buf bytes.Buffer
		require.NoError(t, f.Write(&buf))
		return &buf
	}

	_, err := ReadWorkbook(build([]any{"id", "cropId", "date", "pricePerTon"}))
	assert.ErrorContains(t, err, "missing column marketName")

	_, err = ReadWorkbook(build(
		[]any{"id", "cropId", "date", "pricePerTon", "marketName"},
		[]any{1, 1, "2024-01-01", "cheap", "Central Market"},
	))
	assert.ErrorContains(t, err, "sheet market_trends row 2: pricePerTon: Expected number, received string")

	_, err = ReadWorkbook(build(
		[]any{"id", "cropId", "date", "pricePerTon", "marketName"},
		[]any{1, 1, "2024-01-01", 210},
	))
	assert.ErrorContains(t, err, "marketName: Required")
}
