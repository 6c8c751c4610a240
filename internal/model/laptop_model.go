package model

import (
	"time"

	"github.com/google/uuid"
)

type Laptop struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Price     float64   `gorm:"not null;index"`
	RAM       float64   `gorm:"column:ram;not null"`
	SSD       float64   `gorm:"column:ssd;not null"`
	Display   float64   `gorm:"not null"`
	GPU       float64   `gorm:"column:gpu;not null"`
	Rating    float64   `gorm:"not null"`
	Category  string    `gorm:"type:varchar(32);index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Laptop) TableName() string {
	return "laptops"
}
