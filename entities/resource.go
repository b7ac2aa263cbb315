package entities

// Known resource categories. Anything else is shown as ResourceOther.
const (
	ResourcePesticide  = "pesticide"
	ResourceFertilizer = "fertilizer"
	ResourceSeed       = "seed"
	ResourceOther      = "other"
)

type CropResource struct {
	ID              int    `gorm:"primaryKey;autoIncrement" json:"id"`
	CropID          int    `gorm:"not null;index" json:"cropId"`
	ResourceType    string `gorm:"not null" json:"resourceType"` // pesticide|fertilizer|seed|free text
	Name            string `gorm:"not null" json:"name"`
	Description     string `gorm:"not null" json:"description"`
	ApplicationRate string `gorm:"not null" json:"applicationRate"`
}

func (CropResource) TableName() string { return "crop_resources" }

// Category folds the free-text resource type into one of the known categories.
func (r CropResource) Category() string { return ResourceCategory(r.ResourceType) }

func ResourceCategory(resourceType string) string {
	switch resourceType {
	case ResourcePesticide, ResourceFertilizer, ResourceSeed:
		return resourceType
	}
	return ResourceOther
}

type InsertCropResource struct {
	CropID          int    `json:"cropId"`
	ResourceType    string `json:"resourceType"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	ApplicationRate string `json:"applicationRate"`
}

func (in InsertCropResource) CropResource() CropResource {
	return CropResource{
		CropID:          in.CropID,
		ResourceType:    in.ResourceType,
		Name:            in.Name,
		Description:     in.Description,
		ApplicationRate: in.ApplicationRate,
	}
}
