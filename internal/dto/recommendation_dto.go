package dto

import (
	"time"

	"github.com/google/uuid"
)

type FilterDTO struct {
	PriceMin   *float64 `json:"price_min" validate:"omitempty,gte=0"`
	PriceMax   *float64 `json:"price_max" validate:"omitempty,gte=0"`
	RAMMin     *float64 `json:"ram_min" validate:"omitempty,gte=0"`
	RAMMax     *float64 `json:"ram_max" validate:"omitempty,gte=0"`
	SSDMin     *float64 `json:"ssd_min" validate:"omitempty,gte=0"`
	GPUMin     *float64 `json:"gpu_min" validate:"omitempty,gte=0"`
	RatingMin  *float64 `json:"rating_min" validate:"omitempty,gte=0,lte=5"`
	DisplayMin *float64 `json:"display_min" validate:"omitempty,gte=0"`
	DisplayMax *float64 `json:"display_max" validate:"omitempty,gte=0"`
}

// RecommendationRequest scores the candidate pool directly with caller-given
// criterion importance, bypassing the conversational flow. Weights takes 1-5
// star ratings; Importance takes the discrete labels (Tidak Penting .. Sangat
// Penting) and wins when both are present. Unrecognized labels fall back to
// the middle weight.
type RecommendationRequest struct {
	Weights    map[string]int    `json:"weights" validate:"omitempty,dive,gte=1,lte=5"`
	Importance map[string]string `json:"importance" validate:"omitempty"`
	Filters    FilterDTO         `json:"filters"`
	Category   string            `json:"category" validate:"omitempty,oneof=Gaming Student Office"`
	TopN       int               `json:"top_n" validate:"omitempty,gte=1,lte=20"`
}

// CriterionScoreDTO shows how one criterion contributed to an item's score:
// the raw decision-matrix value, its normalized form, and the weighted term.
type CriterionScoreDTO struct {
	Raw        float64 `json:"raw"`
	Normalized float64 `json:"normalized"`
	Weight     float64 `json:"weight"`
	Weighted   float64 `json:"weighted"`
}

type RecommendationItem struct {
	Rank     int                          `json:"rank"`
	Score    float64                      `json:"score"`
	Laptop   LaptopResponse               `json:"laptop"`
	Details  map[string]CriterionScoreDTO `json:"details,omitempty"`
	Strength string                       `json:"strength,omitempty"`
}

type RecommendationResponse struct {
	Items       []RecommendationItem `json:"items"`
	Total       int                  `json:"total"`
	Explanation string               `json:"explanation,omitempty"`
	Weights     map[string]float64   `json:"weights"`
	GeneratedAt time.Time            `json:"generated_at"`
}

type LaptopResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	RAM      float64   `json:"ram"`
	SSD      float64   `json:"ssd"`
	Display  float64   `json:"display"`
	GPU      float64   `json:"gpu"`
	Rating   float64   `json:"rating"`
	Category string    `json:"category"`
}
