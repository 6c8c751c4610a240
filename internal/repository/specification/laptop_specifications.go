package specification

import "gorm.io/gorm"

type PriceBetween struct {
	Min float64
	Max float64
}

func (s PriceBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("price BETWEEN ? AND ?", s.Min, s.Max)
}

type RAMBetween struct {
	Min float64
	Max float64
}

func (s RAMBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ram BETWEEN ? AND ?", s.Min, s.Max)
}

type SSDAtLeast struct {
	Min float64
}

func (s SSDAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ssd >= ?", s.Min)
}

type RatingAtLeast struct {
	Min float64
}

func (s RatingAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("rating >= ?", s.Min)
}

type DisplayBetween struct {
	Min float64
	Max float64
}

func (s DisplayBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("display BETWEEN ? AND ?", s.Min, s.Max)
}

type GPUAtLeast struct {
	Min float64
}

func (s GPUAtLeast) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("gpu >= ?", s.Min)
}

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type NameContains struct {
	Fragment string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Fragment+"%")
}
