package mapper

import (
	"time"

	"laptop-dss-be/internal/entity"
	"laptop-dss-be/internal/model"
)

type LaptopMapper struct{}

func NewLaptopMapper() *LaptopMapper {
	return &LaptopMapper{}
}

func (m *LaptopMapper) ToEntity(l *model.Laptop) *entity.Laptop {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Laptop{
		Id:        l.Id,
		Name:      l.Name,
		Price:     l.Price,
		RAM:       l.RAM,
		SSD:       l.SSD,
		Display:   l.Display,
		GPU:       l.GPU,
		Rating:    l.Rating,
		Category:  l.Category,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LaptopMapper) ToModel(l *entity.Laptop) *model.Laptop {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.Laptop{
		Id:        l.Id,
		Name:      l.Name,
		Price:     l.Price,
		RAM:       l.RAM,
		SSD:       l.SSD,
		Display:   l.Display,
		GPU:       l.GPU,
		Rating:    l.Rating,
		Category:  l.Category,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *LaptopMapper) ToEntities(laptops []*model.Laptop) []*entity.Laptop {
	entities := make([]*entity.Laptop, len(laptops))
	for i, l := range laptops {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

func (m *LaptopMapper) ToModels(laptops []*entity.Laptop) []*model.Laptop {
	models := make([]*model.Laptop, len(laptops))
	for i, l := range laptops {
		models[i] = m.ToModel(l)
	}
	return models
}
