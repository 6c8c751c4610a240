package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"laptop-dss-be/internal/constant"
	"laptop-dss-be/internal/dto"
	"laptop-dss-be/internal/entity"
	"laptop-dss-be/internal/pkg/logger"
	"laptop-dss-be/internal/repository/contract"
	"laptop-dss-be/internal/repository/specification"
	"laptop-dss-be/pkg/assistant"
	"laptop-dss-be/pkg/saw"

	"github.com/google/uuid"
)

type IDatasetService interface {
	Create(ctx context.Context, req *dto.CreateLaptopRequest) (*dto.LaptopResponse, error)
	List(ctx context.Context, req *dto.ListLaptopsRequest) ([]*dto.LaptopResponse, error)
	Stats(ctx context.Context) (*dto.LaptopStatsResponse, error)
	AssistantStats(ctx context.Context) (assistant.DatasetStats, error)
	FindByFilters(ctx context.Context, filters assistant.FilterSet, category string) ([]*entity.Laptop, error)
}

type datasetService struct {
	laptopRepo contract.LaptopRepository
	logger     logger.ILogger
}

func NewDatasetService(laptopRepo contract.LaptopRepository, logger logger.ILogger) IDatasetService {
	return &datasetService{
		laptopRepo: laptopRepo,
		logger:     logger,
	}
}

func (s *datasetService) Create(ctx context.Context, req *dto.CreateLaptopRequest) (*dto.LaptopResponse, error) {
	laptop := &entity.Laptop{
		Id:      uuid.New(),
		Name:    req.Name,
		Price:   req.Price,
		RAM:     req.RAM,
		SSD:     req.SSD,
		Display: req.Display,
		GPU:     req.GPU,
		Rating:  req.Rating,
	}

	if err := s.sanitize(ctx, laptop); err != nil {
		return nil, err
	}
	laptop.Category = Categorize(laptop)

	if err := s.laptopRepo.Create(ctx, laptop); err != nil {
		return nil, fmt.Errorf("create laptop: %w", err)
	}

	s.logger.Info("DATASET", "laptop added", map[string]interface{}{
		"id":       laptop.Id,
		"name":     laptop.Name,
		"category": laptop.Category,
	})
	return toLaptopResponse(laptop), nil
}

// sanitize enforces the positive floors the scoring math depends on and
// imputes a missing rating from the rest of the pool.
func (s *datasetService) sanitize(ctx context.Context, laptop *entity.Laptop) error {
	if laptop.RAM <= 0 {
		laptop.RAM = constant.SpecValueFloor
	}
	if laptop.SSD <= 0 {
		laptop.SSD = constant.SpecValueFloor
	}
	if laptop.Display <= 0 {
		laptop.Display = constant.SpecValueFloor
	}
	if laptop.GPU < 0 {
		laptop.GPU = 0
	}

	if laptop.Rating <= 0 {
		median, err := s.medianRating(ctx)
		if err != nil {
			return err
		}
		laptop.Rating = median
	}
	return nil
}

func (s *datasetService) medianRating(ctx context.Context) (float64, error) {
	laptops, err := s.laptopRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("median rating: %w", err)
	}

	ratings := make([]float64, 0, len(laptops))
	for _, l := range laptops {
		if l.Rating > 0 {
			ratings = append(ratings, l.Rating)
		}
	}
	if len(ratings) == 0 {
		return 4.0, nil
	}

	sort.Float64s(ratings)
	mid := len(ratings) / 2
	if len(ratings)%2 == 0 {
		return (ratings[mid-1] + ratings[mid]) / 2, nil
	}
	return ratings[mid], nil
}

// Categorize assigns a coarse category from the specs. Anything that looks
// like gaming hardware wins, cheap machines without a dedicated GPU are
// Student, the rest is Office.
func Categorize(laptop *entity.Laptop) string {
	if strings.Contains(strings.ToLower(laptop.Name), "gaming") || laptop.GPU >= constant.GamingGPUThreshold {
		return constant.LaptopCategoryGaming
	}
	if laptop.Price < constant.StudentPriceThreshold && laptop.GPU == 0 {
		return constant.LaptopCategoryStudent
	}
	return constant.LaptopCategoryOffice
}

func (s *datasetService) List(ctx context.Context, req *dto.ListLaptopsRequest) ([]*dto.LaptopResponse, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "price"},
	}
	if req.Category != "" {
		specs = append(specs, specification.ByCategory{Category: req.Category})
	}
	if req.Search != "" {
		specs = append(specs, specification.NameContains{Fragment: req.Search})
	}
	if req.Limit > 0 {
		specs = append(specs, specification.Limit{N: req.Limit})
	}

	laptops, err := s.laptopRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("list laptops: %w", err)
	}

	result := make([]*dto.LaptopResponse, len(laptops))
	for i, l := range laptops {
		result[i] = toLaptopResponse(l)
	}
	return result, nil
}

func (s *datasetService) Stats(ctx context.Context) (*dto.LaptopStatsResponse, error) {
	laptops, err := s.laptopRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dataset stats: %w", err)
	}

	stats := buildStats(laptops)
	res := &dto.LaptopStatsResponse{
		Total:      int64(len(laptops)),
		ByCategory: map[string]int64{},
		Criteria: map[string]dto.CriterionStatsDTO{
			saw.CriterionPrice:   {Min: stats.Price.Min, Max: stats.Price.Max, Avg: stats.Price.Avg},
			saw.CriterionRAM:     {Min: stats.RAM.Min(), Max: stats.RAM.Max(), Options: stats.RAM.Options},
			saw.CriterionSSD:     {Min: stats.SSD.Min(), Max: stats.SSD.Max(), Options: stats.SSD.Options},
			saw.CriterionRating:  {Min: stats.Rating.Min, Max: stats.Rating.Max, Avg: stats.Rating.Avg},
			saw.CriterionDisplay: {Min: stats.Display.Min, Max: stats.Display.Max},
			saw.CriterionGPU:     {Min: stats.GPU.Min(), Max: stats.GPU.Max(), Options: stats.GPU.Options},
		},
	}
	for _, l := range laptops {
		res.ByCategory[l.Category]++
	}
	return res, nil
}

func (s *datasetService) AssistantStats(ctx context.Context) (assistant.DatasetStats, error) {
	laptops, err := s.laptopRepo.FindAll(ctx)
	if err != nil {
		return assistant.DatasetStats{}, fmt.Errorf("assistant stats: %w", err)
	}
	return buildStats(laptops), nil
}

func (s *datasetService) FindByFilters(ctx context.Context, filters assistant.FilterSet, category string) ([]*entity.Laptop, error) {
	specs := []specification.Specification{
		specification.PriceBetween{Min: filters.Price.Min, Max: filters.Price.Max},
		specification.RAMBetween{Min: filters.RAM.Min, Max: filters.RAM.Max},
		specification.SSDAtLeast{Min: filters.SSD.Min},
		specification.RatingAtLeast{Min: filters.Rating.Min},
		specification.DisplayBetween{Min: filters.Display.Min, Max: filters.Display.Max},
		specification.GPUAtLeast{Min: filters.GPU.Min},
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	laptops, err := s.laptopRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("filter laptops: %w", err)
	}
	return laptops, nil
}

func buildStats(laptops []*entity.Laptop) assistant.DatasetStats {
	var stats assistant.DatasetStats
	if len(laptops) == 0 {
		return stats
	}

	var priceSum, ratingSum float64
	ramSet := map[float64]struct{}{}
	ssdSet := map[float64]struct{}{}
	gpuSet := map[float64]struct{}{}

	for i, l := range laptops {
		if i == 0 {
			stats.Price = assistant.RangeStat{Min: l.Price, Max: l.Price}
			stats.Display = assistant.RangeStat{Min: l.Display, Max: l.Display}
			stats.Rating = assistant.RangeStat{Min: l.Rating, Max: l.Rating}
		}
		stats.Price.Min = min(stats.Price.Min, l.Price)
		stats.Price.Max = max(stats.Price.Max, l.Price)
		stats.Display.Min = min(stats.Display.Min, l.Display)
		stats.Display.Max = max(stats.Display.Max, l.Display)
		stats.Rating.Min = min(stats.Rating.Min, l.Rating)
		stats.Rating.Max = max(stats.Rating.Max, l.Rating)
		priceSum += l.Price
		ratingSum += l.Rating
		ramSet[l.RAM] = struct{}{}
		ssdSet[l.SSD] = struct{}{}
		gpuSet[l.GPU] = struct{}{}
	}

	stats.Price.Avg = priceSum / float64(len(laptops))
	stats.Rating.Avg = ratingSum / float64(len(laptops))
	stats.RAM = assistant.OptionStat{Options: sortedKeys(ramSet)}
	stats.SSD = assistant.OptionStat{Options: sortedKeys(ssdSet)}
	stats.GPU = assistant.OptionStat{Options: sortedKeys(gpuSet)}
	return stats
}

func sortedKeys(set map[float64]struct{}) []float64 {
	keys := make([]float64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

func toLaptopResponse(l *entity.Laptop) *dto.LaptopResponse {
	return &dto.LaptopResponse{
		Id:       l.Id,
		Name:     l.Name,
		Price:    l.Price,
		RAM:      l.RAM,
		SSD:      l.SSD,
		Display:  l.Display,
		GPU:      l.GPU,
		Rating:   l.Rating,
		Category: l.Category,
	}
}
