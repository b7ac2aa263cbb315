package schema

var (
	CropShape = NewShape("crop",
		Field{"id", Integer},
		Field{"name", String},
		Field{"growthDurationDays", Integer},
		Field{"optimalTempMin", Integer},
		Field{"optimalTempMax", Integer},
		Field{"optimalHumidityMin", Integer},
		Field{"optimalHumidityMax", Integer},
		Field{"soilType", String},
	)
	CropResourceShape = NewShape("cropResource",
		Field{"id", Integer},
		Field{"cropId", Integer},
		Field{"resourceType", String},
		Field{"name", String},
		Field{"description", String},
		Field{"applicationRate", String},
	)
	MarketTrendShape = NewShape("marketTrend",
		Field{"id", Integer},
		Field{"cropId", Integer},
		Field{"date", String},
		Field{"pricePerTon", Integer},
		Field{"marketName", String},
	)
	EnvironmentalLogShape = NewShape("environmentalLog",
		Field{"id", Integer},
		Field{"cropId", Integer},
		Field{"date", String},
		Field{"temperature", Integer},
		Field{"humidity", Integer},
		Field{"growthStage", String},
	)
	LaborAvailabilityShape = NewShape("laborAvailability",
		Field{"id", Integer},
		Field{"region", String},
		Field{"date", String},
		Field{"availableWorkers", Integer},
		Field{"dailyWage", Number},
	)

	// Insert shapes drop the server-assigned id.
	InsertCropShape              = CropShape.Omit("id")
	InsertCropResourceShape      = CropResourceShape.Omit("id")
	InsertMarketTrendShape       = MarketTrendShape.Omit("id")
	InsertEnvironmentalLogShape  = EnvironmentalLogShape.Omit("id")
	InsertLaborAvailabilityShape = LaborAvailabilityShape.Omit("id")

	// ErrorShape is the body of a 400 response.
	ErrorShape = NewShape("error", Field{"message", String})
)
