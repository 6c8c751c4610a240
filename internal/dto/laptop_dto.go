package dto

type CreateLaptopRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Price   float64 `json:"price" validate:"required,gt=0"`
	RAM     float64 `json:"ram" validate:"required,gt=0"`
	SSD     float64 `json:"ssd" validate:"gte=0"`
	Display float64 `json:"display" validate:"required,gt=0"`
	GPU     float64 `json:"gpu" validate:"gte=0"`
	Rating  float64 `json:"rating" validate:"gte=0,lte=5"`
}

type ListLaptopsRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=Gaming Student Office"`
	Search   string `query:"search" validate:"omitempty,max=255"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=200"`
}

type CriterionStatsDTO struct {
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	Avg     float64   `json:"avg,omitempty"`
	Options []float64 `json:"options,omitempty"`
}

type LaptopStatsResponse struct {
	Total      int64                        `json:"total"`
	ByCategory map[string]int64             `json:"by_category"`
	Criteria   map[string]CriterionStatsDTO `json:"criteria"`
}
