package database

import (
	"context"
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/navya9866/Smart-agriculture/entities"
	cropRepo "github.com/navya9866/Smart-agriculture/pkg/crop/repository"
	envRepo "github.com/navya9866/Smart-agriculture/pkg/environment/repository"
	laborRepo "github.com/navya9866/Smart-agriculture/pkg/labor/repository"
	marketRepo "github.com/navya9866/Smart-agriculture/pkg/market/repository"
	resourceRepo "github.com/navya9866/Smart-agriculture/pkg/resource/repository"
	"github.com/navya9866/Smart-agriculture/pkg/report"
)

// Stores groups the repositories the seeder writes through.
type Stores struct {
	Crops       cropRepo.CropRepository
	Resources   resourceRepo.ResourceRepository
	Markets     marketRepo.MarketRepository
	Environment envRepo.EnvironmentRepository
	Labor       laborRepo.LaborRepository
}

type SeedRecorder interface {
	RecordSeedRows(table string, n int)
}

type SeedOptions struct {
	// RandomSeed drives the jitter of the built-in rows. 0 picks a random seed.
	RandomSeed int64
	// Dataset replaces the built-in rows, e.g. a workbook loaded with
	// report.OpenWorkbook. Crop ids in it are only used to link child rows.
	Dataset  *report.Dataset
	Recorder SeedRecorder
}

type SeedResult struct {
	Skipped bool
	Rows    map[string]int
}

// Seed fills an empty store with sample data. It does nothing when at least
// one crop exists. The check and the inserts are not one transaction, so two
// concurrent first starts may both seed.
func Seed(ctx context.Context, s Stores, opts SeedOptions) (SeedResult, error) {
	n, err := s.Crops.Count(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if n > 0 {
		log.Printf("[seed] %d crops present, skipping", n)
		return SeedResult{Skipped: true}, nil
	}

	d := opts.Dataset
	if d == nil {
		def := DefaultDataset(opts.RandomSeed)
		d = &def
	}
	rows, err := insertDataset(ctx, s, *d)
	if opts.Recorder != nil {
		for table, k := range rows {
			opts.Recorder.RecordSeedRows(table, k)
		}
	}
	if err != nil {
		return SeedResult{Rows: rows}, fmt.Errorf("seed: %w", err)
	}
	log.Printf("[seed] inserted %v", rows)
	return SeedResult{Rows: rows}, nil
}

func insertDataset(ctx context.Context, s Stores, d report.Dataset) (map[string]int, error) {
	rows := map[string]int{}
	ids := make(map[int]int, len(d.Crops))

	for _, c := range d.Crops {
		old := c.ID
		if err := s.Crops.Create(ctx, &c); err != nil {
			return rows, err
		}
		ids[old] = c.ID
		rows[c.TableName()]++
	}

	link := func(table string, i, cropID int) (int, error) {
		id, ok := ids[cropID]
		if !ok {
			return 0, fmt.Errorf("%s row %d references unknown crop %d", table, i+1, cropID)
		}
		return id, nil
	}

	for i, r := range d.Resources {
		id, err := link(r.TableName(), i, r.CropID)
		if err != nil {
			return rows, err
		}
		r.CropID = id
		if err := s.Resources.Create(ctx, &r); err != nil {
			return rows, err
		}
		rows[r.TableName()]++
	}
	for i, t := range d.MarketTrends {
		id, err := link(t.TableName(), i, t.CropID)
		if err != nil {
			return rows, err
		}
		t.CropID = id
		if err := s.Markets.Create(ctx, &t); err != nil {
			return rows, err
		}
		rows[t.TableName()]++
	}
	for i, l := range d.EnvironmentalLogs {
		id, err := link(l.TableName(), i, l.CropID)
		if err != nil {
			return rows, err
		}
		l.CropID = id
		if err := s.Environment.Create(ctx, &l); err != nil {
			return rows, err
		}
		rows[l.TableName()]++
	}
	for _, l := range d.Labor {
		if err := s.Labor.Create(ctx, &l); err != nil {
			return rows, err
		}
		rows[l.TableName()]++
	}
	return rows, nil
}

// DefaultDataset builds the sample rows: two crops, two resources for the
// first, five monthly market prices and environment readings per crop and
// three labor regions. Crop ids are placeholders 1 and 2.
func DefaultDataset(randomSeed int64) report.Dataset {
	faker := gofakeit.New(randomSeed)

	const wheat, rice = 1, 2
	d := report.Dataset{
		Crops: []entities.Crop{
			{ID: wheat, Name: "Wheat", GrowthDurationDays: 120, OptimalTempMin: 15, OptimalTempMax: 25,
				OptimalHumidityMin: 50, OptimalHumidityMax: 70, SoilType: "Loam"},
			{ID: rice, Name: "Rice", GrowthDurationDays: 150, OptimalTempMin: 20, OptimalTempMax: 30,
				OptimalHumidityMin: 60, OptimalHumidityMax: 80, SoilType: "Clay Loam"},
		},
		Resources: []entities.CropResource{
			{CropID: wheat, ResourceType: entities.ResourceFertilizer, Name: "Urea 46% N",
				Description: "Nitrogen fertilizer for vegetative growth", ApplicationRate: "50 kg/ha"},
			{CropID: wheat, ResourceType: entities.ResourcePesticide, Name: "Chlorpyrifos",
				Description: "Controls aphids and worms", ApplicationRate: "1 L/ha"},
		},
		Labor: []entities.LaborAvailability{
			{Region: "North Plains", Date: "2024-05-01", AvailableWorkers: 150, DailyWage: 40},
			{Region: "South Valley", Date: "2024-05-01", AvailableWorkers: 85, DailyWage: 45},
			{Region: "East Hills", Date: "2024-05-01", AvailableWorkers: 210, DailyWage: 35},
		},
	}

	for i, month := range []string{"01", "02", "03", "04", "05"} {
		date := "2024-" + month + "-01"
		stage := "Reproductive"
		if i < 2 {
			stage = "Vegetative"
		}
		d.MarketTrends = append(d.MarketTrends,
			entities.MarketTrend{CropID: wheat, Date: date, PricePerTon: faker.Number(200, 249), MarketName: "Central Market"})
		d.EnvironmentalLogs = append(d.EnvironmentalLogs,
			entities.EnvironmentalLog{CropID: wheat, Date: date, Temperature: faker.Number(18, 22), Humidity: faker.Number(55, 64), GrowthStage: stage})
		d.MarketTrends = append(d.MarketTrends,
			entities.MarketTrend{CropID: rice, Date: date, PricePerTon: faker.Number(300, 369), MarketName: "South Market"})
		d.EnvironmentalLogs = append(d.EnvironmentalLogs,
			entities.EnvironmentalLog{CropID: rice, Date: date, Temperature: faker.Number(22, 27), Humidity: faker.Number(65, 79), GrowthStage: stage})
	}
	return d
}
