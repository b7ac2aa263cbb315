// Package analytics holds the aggregations behind the dashboard, labor and
// crop detail views. Inputs are never modified.
package analytics

import (
	"slices"
	"strings"

	"github.com/navya9866/Smart-agriculture/entities"
)

// IndexPoint is one date of the platform market index.
type IndexPoint struct {
	Date     string  `json:"date"`
	AvgPrice float64 `json:"avgPrice"`
}

// MarketIndex folds trends into one price per date. A repeated date is
// blended as (previous + current) / 2 in input order, so with three or more
// markets on one date later rows weigh more than a plain mean would give
// them. Points come back oldest first.
func MarketIndex(trends []entities.MarketTrend) []IndexPoint {
	out := []IndexPoint{}
	at := map[string]int{}
	for _, t := range trends {
		if i, ok := at[t.Date]; ok {
			out[i].AvgPrice = (out[i].AvgPrice + float64(t.PricePerTon)) / 2
			continue
		}
		at[t.Date] = len(out)
		out = append(out, IndexPoint{Date: t.Date, AvgPrice: float64(t.PricePerTon)})
	}
	slices.SortStableFunc(out, func(a, b IndexPoint) int { return strings.Compare(a.Date, b.Date) })
	return out
}

// LatestIndex is the most recent point's price, or 0 when there is none.
func LatestIndex(points []IndexPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	return points[len(points)-1].AvgPrice
}

func AverageWage(labor []entities.LaborAvailability) float64 {
	if len(labor) == 0 {
		return 0
	}
	var sum float64
	for _, l := range labor {
		sum += l.DailyWage
	}
	return sum / float64(len(labor))
}

// ActiveRegions counts distinct region names.
func ActiveRegions(labor []entities.LaborAvailability) int {
	seen := map[string]struct{}{}
	for _, l := range labor {
		seen[l.Region] = struct{}{}
	}
	return len(seen)
}

type RegionSummary struct {
	Region  string  `json:"region"`
	Workers int     `json:"workers"`
	WageSum float64 `json:"wageSum"`
	Count   int     `json:"count"`
	AvgWage float64 `json:"avgWage"`
}

// LaborByRegion sums workers and averages wages per region, in the order
// regions first appear.
func LaborByRegion(labor []entities.LaborAvailability) []RegionSummary {
	out := []RegionSummary{}
	at := map[string]int{}
	for _, l := range labor {
		i, ok := at[l.Region]
		if !ok {
			at[l.Region] = len(out)
			out = append(out, RegionSummary{Region: l.Region, Workers: l.AvailableWorkers, WageSum: l.DailyWage, Count: 1, AvgWage: l.DailyWage})
			continue
		}
		r := &out[i]
		r.Workers += l.AvailableWorkers
		r.WageSum += l.DailyWage
		r.Count++
		r.AvgWage = r.WageSum / float64(r.Count)
	}
	return out
}

// SortTrendsByDate returns a copy ordered oldest first.
func SortTrendsByDate(trends []entities.MarketTrend) []entities.MarketTrend {
	out := slices.Clone(trends)
	slices.SortStableFunc(out, func(a, b entities.MarketTrend) int { return strings.Compare(a.Date, b.Date) })
	return out
}

func SortLogsByDate(logs []entities.EnvironmentalLog) []entities.EnvironmentalLog {
	out := slices.Clone(logs)
	slices.SortStableFunc(out, func(a, b entities.EnvironmentalLog) int { return strings.Compare(a.Date, b.Date) })
	return out
}

// SortLaborByDateDesc returns a copy ordered newest first.
func SortLaborByDateDesc(labor []entities.LaborAvailability) []entities.LaborAvailability {
	out := slices.Clone(labor)
	slices.SortStableFunc(out, func(a, b entities.LaborAvailability) int { return strings.Compare(b.Date, a.Date) })
	return out
}

// ResourcesByCategory buckets resources under pesticide, fertilizer, seed
// or other, keeping input order inside each bucket.
func ResourcesByCategory(res []entities.CropResource) map[string][]entities.CropResource {
	out := map[string][]entities.CropResource{}
	for _, r := range res {
		cat := r.Category()
		out[cat] = append(out[cat], r)
	}
	return out
}

// Overview is the dashboard's headline figures.
type Overview struct {
	MonitoredCrops int          `json:"monitoredCrops"`
	AvgMarketPrice float64      `json:"avgMarketPrice"`
	ActiveRegions  int          `json:"activeRegions"`
	AvgDailyWage   float64      `json:"avgDailyWage"`
	Index          []IndexPoint `json:"index"`
}

func BuildOverview(crops []entities.Crop, trends []entities.MarketTrend, labor []entities.LaborAvailability) Overview {
	idx := MarketIndex(trends)
	return Overview{
		MonitoredCrops: len(crops),
		AvgMarketPrice: LatestIndex(idx),
		ActiveRegions:  ActiveRegions(labor),
		AvgDailyWage:   AverageWage(labor),
		Index:          idx,
	}
}
