package entities

// LaborAvailability is a regional labor survey row; it is not tied to a crop.
type LaborAvailability struct {
	ID               int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Region           string  `gorm:"not null" json:"region"`
	Date             string  `gorm:"not null" json:"date"`
	AvailableWorkers int     `gorm:"not null" json:"availableWorkers"`
	DailyWage        float64 `gorm:"not null" json:"dailyWage"`
}

func (LaborAvailability) TableName() string { return "labor_availability" }

type InsertLaborAvailability struct {
	Region           string  `json:"region"`
	Date             string  `json:"date" validate:"datetime=2006-01-02"`
	AvailableWorkers int     `json:"availableWorkers" validate:"gte=0"`
	DailyWage        float64 `json:"dailyWage" validate:"gte=0"`
}

func (in InsertLaborAvailability) LaborAvailability() LaborAvailability {
	return LaborAvailability{
		Region:           in.Region,
		Date:             in.Date,
		AvailableWorkers: in.AvailableWorkers,
		DailyWage:        in.DailyWage,
	}
}
