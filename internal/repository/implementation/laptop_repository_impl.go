package implementation

import (
	"context"
	"errors"

	"laptop-dss-be/internal/entity"
	"laptop-dss-be/internal/mapper"
	"laptop-dss-be/internal/model"
	"laptop-dss-be/internal/repository/contract"
	"laptop-dss-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LaptopRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LaptopMapper
}

func NewLaptopRepository(db *gorm.DB) contract.LaptopRepository {
	return &LaptopRepositoryImpl{
		db:     db,
		mapper: mapper.NewLaptopMapper(),
	}
}

func (r *LaptopRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LaptopRepositoryImpl) Create(ctx context.Context, laptop *entity.Laptop) error {
	m := r.mapper.ToModel(laptop)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*laptop = *r.mapper.ToEntity(m)
	return nil
}

func (r *LaptopRepositoryImpl) CreateBatch(ctx context.Context, laptops []*entity.Laptop) error {
	if len(laptops) == 0 {
		return nil
	}
	models := r.mapper.ToModels(laptops)
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return err
	}
	for i, m := range models {
		*laptops[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *LaptopRepositoryImpl) Update(ctx context.Context, laptop *entity.Laptop) error {
	m := r.mapper.ToModel(laptop)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*laptop = *r.mapper.ToEntity(m)
	return nil
}

func (r *LaptopRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Laptop{}, id).Error
}

func (r *LaptopRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Laptop, error) {
	var m model.Laptop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LaptopRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Laptop, error) {
	var models []*model.Laptop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LaptopRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Laptop{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
