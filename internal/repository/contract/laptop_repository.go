package contract

import (
	"context"

	"laptop-dss-be/internal/entity"
	"laptop-dss-be/internal/repository/specification"

	"github.com/google/uuid"
)

type LaptopRepository interface {
	Create(ctx context.Context, laptop *entity.Laptop) error
	CreateBatch(ctx context.Context, laptops []*entity.Laptop) error
	Update(ctx context.Context, laptop *entity.Laptop) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Laptop, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Laptop, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
