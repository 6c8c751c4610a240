package service

import (
	"context"
	"strings"

	"laptop-dss-be/internal/constant"
	"laptop-dss-be/internal/dto"
	"laptop-dss-be/internal/pkg/logger"
	"laptop-dss-be/internal/repository/memory"
	"laptop-dss-be/pkg/assistant"
	"laptop-dss-be/pkg/saw"
	"laptop-dss-be/pkg/store"
)

type IChatService interface {
	SendMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
	Reset(ctx context.Context, sessionId string) error
	History(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	sessionRepo           *memory.SessionRepository
	extractor             *assistant.Extractor
	datasetService        IDatasetService
	recommendationService IRecommendationService
	logger                logger.ILogger
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	extractor *assistant.Extractor,
	datasetService IDatasetService,
	recommendationService IRecommendationService,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo:           sessionRepo,
		extractor:             extractor,
		datasetService:        datasetService,
		recommendationService: recommendationService,
		logger:                logger,
	}
}

func (s *chatService) SendMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	sess := s.sessionRepo.GetOrCreate(req.SessionId)
	sess.AddMessage(store.RoleUser, req.Message)

	stats, err := s.datasetService.AssistantStats(ctx)
	if err != nil {
		return nil, err
	}

	extraction := s.extractor.Extract(ctx, req.Message, stats, sess)
	if extraction.Err != "" {
		s.logger.Warn("CHAT", "extraction degraded to fallback", map[string]interface{}{
			"session_id": req.SessionId,
			"reason":     extraction.Err,
		})
	}

	res := &dto.ChatMessageResponse{
		SessionId:          req.SessionId,
		NeedsClarification: extraction.NeedsClarification,
	}

	switch {
	case extraction.NeedsClarification:
		res.Response = extraction.ResponseMessage

	case !extraction.Success:
		res.Response = extraction.ResponseMessage

	default:
		reply, items, err := s.recommend(ctx, sess, stats, extraction)
		if err != nil {
			return nil, err
		}
		res.Response = reply
		res.Recommendations = items
	}

	sess.AddMessage(store.RoleAssistant, res.Response)
	s.sessionRepo.Save(sess)

	res.Preferences = dto.PreferencesDTO{
		Budget:  sess.Preferences.Budget,
		UseCase: sess.Preferences.UseCase,
	}
	return res, nil
}

func (s *chatService) recommend(ctx context.Context, sess *store.Session, stats assistant.DatasetStats, extraction assistant.Result) (string, []dto.RecommendationItem, error) {
	filters := assistant.ResolveFilters(extraction.Filters, stats)
	weights := saw.StarsToWeights(extraction.Weights)

	rec, err := s.recommendationService.RecommendFiltered(ctx, filters, weights, "", constant.DefaultTopN)
	if err != nil {
		return "", nil, err
	}

	if len(rec.Items) == 0 {
		reply := strings.TrimSpace(extraction.ResponseMessage +
			"\n\nMaaf, tidak ada laptop yang cocok dengan kriteria tersebut. Coba longgarkan budget atau spesifikasi minimalnya.")
		return reply, nil, nil
	}

	// Alternatives are picked from the whole filtered pool, not just the
	// ranked head, so a cheap outsider still gets mentioned.
	top := rec.Items[0]
	pool, err := s.datasetService.FindByFilters(ctx, filters, "")
	if err != nil {
		return "", nil, err
	}
	candidates := make([]assistant.Candidate, 0, len(pool))
	for _, l := range pool {
		if l.Name == top.Laptop.Name {
			continue
		}
		candidates = append(candidates, assistant.Candidate{
			Name:    l.Name,
			Price:   l.Price,
			RAM:     l.RAM,
			SSD:     l.SSD,
			Display: l.Display,
			GPU:     l.GPU,
			Rating:  l.Rating,
		})
	}
	explanation := assistant.Explain(toCandidate(top), sess.Preferences.Budget, sess.Preferences.UseCase, candidates)

	for _, item := range rec.Items {
		sess.AddRecommendedLaptop(item.Laptop.Name)
	}

	reply := strings.TrimSpace(extraction.ResponseMessage + "\n\n" + explanation)
	return reply, rec.Items, nil
}

func (s *chatService) Reset(ctx context.Context, sessionId string) error {
	if sess, found := s.sessionRepo.Get(sessionId); found {
		sess.Clear()
		s.sessionRepo.Save(sess)
	}
	s.logger.Info("CHAT", "session reset", map[string]interface{}{"session_id": sessionId})
	return nil
}

func (s *chatService) History(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error) {
	res := &dto.ChatHistoryResponse{
		SessionId: sessionId,
		Messages:  []dto.ChatTurnDTO{},
	}

	sess, found := s.sessionRepo.Get(sessionId)
	if !found {
		return res, nil
	}

	for _, turn := range sess.Messages {
		res.Messages = append(res.Messages, dto.ChatTurnDTO{
			Role:      turn.Role,
			Content:   turn.Content,
			Timestamp: turn.Timestamp,
		})
	}
	res.Preferences = dto.PreferencesDTO{
		Budget:  sess.Preferences.Budget,
		UseCase: sess.Preferences.UseCase,
	}
	return res, nil
}

func toCandidate(item dto.RecommendationItem) assistant.Candidate {
	return assistant.Candidate{
		Name:    item.Laptop.Name,
		Price:   item.Laptop.Price,
		RAM:     item.Laptop.RAM,
		SSD:     item.Laptop.SSD,
		Display: item.Laptop.Display,
		GPU:     item.Laptop.GPU,
		Rating:  item.Laptop.Rating,
	}
}
