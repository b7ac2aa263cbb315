package entities

// DateLayout is the wire and storage format of every date column.
const DateLayout = "2006-01-02"

type MarketTrend struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	CropID      int    `gorm:"not null;index" json:"cropId"`
	Date        string `gorm:"not null" json:"date"` // YYYY-MM-DD
	PricePerTon int    `gorm:"not null" json:"pricePerTon"`
	MarketName  string `gorm:"not null" json:"marketName"`
}

func (MarketTrend) TableName() string { return "market_trends" }

type InsertMarketTrend struct {
	CropID      int    `json:"cropId"`
	Date        string `json:"date" validate:"datetime=2006-01-02"`
	PricePerTon int    `json:"pricePerTon"`
	MarketName  string `json:"marketName"`
}

func (in InsertMarketTrend) MarketTrend() MarketTrend {
	return MarketTrend{CropID: in.CropID, Date: in.Date, PricePerTon: in.PricePerTon, MarketName: in.MarketName}
}
