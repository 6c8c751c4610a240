package service

import (
	"context"
	"time"

	"laptop-dss-be/internal/constant"
	"laptop-dss-be/internal/dto"
	"laptop-dss-be/internal/entity"
	"laptop-dss-be/internal/pkg/logger"
	"laptop-dss-be/pkg/assistant"
	"laptop-dss-be/pkg/saw"
)

type IRecommendationService interface {
	Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error)
	RecommendFiltered(ctx context.Context, filters assistant.FilterSet, weights map[string]float64, category string, topN int) (*dto.RecommendationResponse, error)
}

type recommendationService struct {
	datasetService IDatasetService
	logger         logger.ILogger
}

func NewRecommendationService(datasetService IDatasetService, logger logger.ILogger) IRecommendationService {
	return &recommendationService{
		datasetService: datasetService,
		logger:         logger,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, req *dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	stats, err := s.datasetService.AssistantStats(ctx)
	if err != nil {
		return nil, err
	}

	filters := assistant.ResolveFilters(toFilterHints(req.Filters), stats)

	var weights map[string]float64
	if len(req.Importance) > 0 {
		weights = saw.ImportanceToWeights(req.Importance)
	} else {
		weights = saw.StarsToWeights(req.Weights)
	}

	topN := req.TopN
	if topN <= 0 {
		topN = constant.DefaultTopN
	}
	return s.RecommendFiltered(ctx, filters, weights, req.Category, topN)
}

func (s *recommendationService) RecommendFiltered(ctx context.Context, filters assistant.FilterSet, weights map[string]float64, category string, topN int) (*dto.RecommendationResponse, error) {
	res := &dto.RecommendationResponse{
		Items:       []dto.RecommendationItem{},
		Weights:     weights,
		GeneratedAt: time.Now(),
	}

	// Contradictory bounds mean an empty pool, no point querying or scoring.
	if filters.Price.Min > filters.Price.Max ||
		filters.RAM.Min > filters.RAM.Max ||
		filters.Display.Min > filters.Display.Max {
		s.logger.Warn("RECOMMEND", "contradictory filter bounds", map[string]interface{}{
			"filters": filters,
		})
		return res, nil
	}

	laptops, err := s.datasetService.FindByFilters(ctx, filters, category)
	if err != nil {
		return nil, err
	}
	if len(laptops) == 0 {
		return res, nil
	}

	scored := scorePool(laptops, weights)
	ranked := saw.Rank(scored.Scores, topN)

	res.Total = len(laptops)
	for _, r := range ranked {
		res.Items = append(res.Items, dto.RecommendationItem{
			Rank:    r.Rank,
			Score:   r.Score,
			Laptop:  *toLaptopResponse(laptops[r.Index]),
			Details: criterionDetails(scored, weights, r.Index),
		})
	}

	s.logger.Info("RECOMMEND", "pool scored", map[string]interface{}{
		"candidates": len(laptops),
		"returned":   len(res.Items),
	})
	return res, nil
}

// criterionDetails exposes one alternative's row from the decision and
// normalized matrices, so callers can see where each score came from.
func criterionDetails(scored saw.Result, weights map[string]float64, row int) map[string]dto.CriterionScoreDTO {
	details := make(map[string]dto.CriterionScoreDTO, len(saw.Criteria))
	for _, key := range saw.CriterionKeys() {
		norm := scored.Normalized.Cell(key, row)
		details[key] = dto.CriterionScoreDTO{
			Raw:        scored.Decision.Cell(key, row),
			Normalized: norm,
			Weight:     weights[key],
			Weighted:   weights[key] * norm,
		}
	}
	return details
}

// scorePool builds the decision matrix from the filtered pool and runs the
// weighted scoring over it.
func scorePool(laptops []*entity.Laptop, weights map[string]float64) saw.Result {
	m := saw.NewMatrix(len(laptops))
	cols := map[string][]float64{
		saw.CriterionPrice:   make([]float64, len(laptops)),
		saw.CriterionRAM:     make([]float64, len(laptops)),
		saw.CriterionSSD:     make([]float64, len(laptops)),
		saw.CriterionRating:  make([]float64, len(laptops)),
		saw.CriterionDisplay: make([]float64, len(laptops)),
		saw.CriterionGPU:     make([]float64, len(laptops)),
	}
	for i, l := range laptops {
		cols[saw.CriterionPrice][i] = l.Price
		cols[saw.CriterionRAM][i] = l.RAM
		cols[saw.CriterionSSD][i] = l.SSD
		cols[saw.CriterionRating][i] = l.Rating
		cols[saw.CriterionDisplay][i] = l.Display
		cols[saw.CriterionGPU][i] = l.GPU
	}
	for _, key := range saw.CriterionKeys() {
		// column lengths match the pool by construction
		_ = m.AddColumn(key, cols[key])
	}
	return saw.CalculateScores(m, weights)
}

func toFilterHints(f dto.FilterDTO) assistant.FilterHints {
	return assistant.FilterHints{
		PriceMin:   f.PriceMin,
		PriceMax:   f.PriceMax,
		RAMMin:     f.RAMMin,
		RAMMax:     f.RAMMax,
		SSDMin:     f.SSDMin,
		GPUMin:     f.GPUMin,
		RatingMin:  f.RatingMin,
		DisplayMin: f.DisplayMin,
		DisplayMax: f.DisplayMax,
	}
}
