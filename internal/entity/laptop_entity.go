package entity

import (
	"time"

	"github.com/google/uuid"
)

// Laptop is one candidate in the decision pool. Price is in full rupiah,
// RAM/SSD/GPU in gigabytes, Display in inches.
type Laptop struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Price     float64
	RAM       float64
	SSD       float64
	Display   float64
	GPU       float64
	Rating    float64
	Category  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
