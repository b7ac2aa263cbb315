package entities

// Crop is the root record; resources, market trends and environmental logs
// point at it through CropID.
type Crop struct {
	ID                 int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string `gorm:"not null" json:"name"`
	GrowthDurationDays int    `gorm:"not null" json:"growthDurationDays"`
	OptimalTempMin     int    `gorm:"not null" json:"optimalTempMin"`
	OptimalTempMax     int    `gorm:"not null" json:"optimalTempMax"`
	OptimalHumidityMin int    `gorm:"not null" json:"optimalHumidityMin"`
	OptimalHumidityMax int    `gorm:"not null" json:"optimalHumidityMax"`
	SoilType           string `gorm:"not null" json:"soilType"`
}

func (Crop) TableName() string { return "crops" }

// InsertCrop is the create payload: a Crop without its id.
type InsertCrop struct {
	Name               string `json:"name"`
	GrowthDurationDays int    `json:"growthDurationDays"`
	OptimalTempMin     int    `json:"optimalTempMin"`
	OptimalTempMax     int    `json:"optimalTempMax"`
	OptimalHumidityMin int    `json:"optimalHumidityMin"`
	OptimalHumidityMax int    `json:"optimalHumidityMax"`
	SoilType           string `json:"soilType"`
}

func (in InsertCrop) Crop() Crop {
	return Crop{
		Name:               in.Name,
		GrowthDurationDays: in.GrowthDurationDays,
		OptimalTempMin:     in.OptimalTempMin,
		OptimalTempMax:     in.OptimalTempMax,
		OptimalHumidityMin: in.OptimalHumidityMin,
		OptimalHumidityMax: in.OptimalHumidityMax,
		SoilType:           in.SoilType,
	}
}
