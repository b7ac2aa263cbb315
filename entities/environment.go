package entities

type EnvironmentalLog struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	CropID      int    `gorm:"not null;index" json:"cropId"`
	Date        string `gorm:"not null" json:"date"`
	Temperature int    `gorm:"not null" json:"temperature"`
	Humidity    int    `gorm:"not null" json:"humidity"`
	GrowthStage string `gorm:"not null" json:"growthStage"`
}

func (EnvironmentalLog) TableName() string { return "environmental_logs" }

type InsertEnvironmentalLog struct {
	CropID      int    `json:"cropId"`
	Date        string `json:"date" validate:"datetime=2006-01-02"`
	Temperature int    `json:"temperature"`
	Humidity    int    `json:"humidity"`
	GrowthStage string `json:"growthStage"`
}

func (in InsertEnvironmentalLog) EnvironmentalLog() EnvironmentalLog {
	return EnvironmentalLog{
		CropID:      in.CropID,
		Date:        in.Date,
		Temperature: in.Temperature,
		Humidity:    in.Humidity,
		GrowthStage: in.GrowthStage,
	}
}
