package service

import (
	"context"
	"errors"
	"testing"

	"laptop-dss-be/internal/dto"
	"laptop-dss-be/internal/repository/memory"
	"laptop-dss-be/pkg/assistant"
	"laptop-dss-be/pkg/llm"
	"laptop-dss-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	reply string
	err   error
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.reply, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.reply, f.err
}

func newChatFixture(provider llm.Provider) (IChatService, *memory.SessionRepository) {
	repo := &fakeLaptopRepo{laptops: seedLaptops()}
	dataset := NewDatasetService(repo, nopLogger{})
	recommendation := NewRecommendationService(dataset, nopLogger{})
	sessions := memory.NewSessionRepository()
	extractor := assistant.NewExtractor(provider, nil)
	return NewChatService(sessions, extractor, dataset, recommendation, nopLogger{}), sessions
}

func TestChatFallbackFlowProducesRecommendations(t *testing.T) {
	svc, sessions := newChatFixture(&fakeProvider{err: errors.New("model down")})

	res, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionId: "sess-1",
		Message:   "laptop gaming budget 15 juta",
	})

	assert.NoError(t, err)
	assert.False(t, res.NeedsClarification)
	assert.NotEmpty(t, res.Recommendations)
	assert.Contains(t, res.Response, "Rekomendasi terbaik")
	assert.Equal(t, 15_000_000.0, res.Preferences.Budget)
	assert.Equal(t, "gaming", res.Preferences.UseCase)

	// Gaming preset demands 16GB RAM and a 4GB GPU within the budget.
	for _, item := range res.Recommendations {
		assert.LessOrEqual(t, item.Laptop.Price, 15_000_000.0)
		assert.GreaterOrEqual(t, item.Laptop.GPU, 4.0)
	}

	sess, found := sessions.Get("sess-1")
	assert.True(t, found)
	assert.Len(t, sess.Messages, 2)
	assert.Equal(t, store.RoleUser, sess.Messages[0].Role)
	assert.Equal(t, store.RoleAssistant, sess.Messages[1].Role)
	assert.NotEmpty(t, sess.RecommendedLaptops)
}

func TestChatVagueMessageAsksClarification(t *testing.T) {
	svc, sessions := newChatFixture(&fakeProvider{reply: "{}"})

	res, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionId: "sess-2",
		Message:   "cari laptop murah",
	})

	assert.NoError(t, err)
	assert.True(t, res.NeedsClarification)
	assert.Empty(t, res.Recommendations)
	assert.Contains(t, res.Response, "budget")

	sess, _ := sessions.Get("sess-2")
	assert.False(t, sess.ShouldAskClarification(store.TopicBudget))
}

func TestChatModelDrivenFlow(t *testing.T) {
	reply := `{"understood": true, "use_case": "office",
		"response_message": "Siap, berikut pilihan laptop kerja.",
		"filters": {"price_max": 13000000, "gpu_min": null},
		"weights": {"price": 4, "rating": 4},
		"detected_preferences": {"budget": 13000000, "use_case": "office"}}`
	svc, _ := newChatFixture(&fakeProvider{reply: reply})

	res, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionId: "sess-3",
		Message:   "laptop kerja 13 juta",
	})

	assert.NoError(t, err)
	assert.Contains(t, res.Response, "Siap, berikut pilihan laptop kerja.")
	assert.NotEmpty(t, res.Recommendations)
	for _, item := range res.Recommendations {
		assert.LessOrEqual(t, item.Laptop.Price, 13_000_000.0)
	}
	assert.Equal(t, 13_000_000.0, res.Preferences.Budget)

	// The cheapest candidate under the winner is offered as an alternative.
	assert.Contains(t, res.Response, "Alternatif")
	assert.Contains(t, res.Response, "lebih murah")
}

func TestChatNoMatchesMessage(t *testing.T) {
	reply := `{"understood": true, "use_case": "gaming",
		"response_message": "Oke.",
		"filters": {"price_max": 3000000, "gpu_min": 8},
		"weights": {},
		"detected_preferences": {"budget": 3000000, "use_case": "gaming"}}`
	svc, _ := newChatFixture(&fakeProvider{reply: reply})

	res, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionId: "sess-4",
		Message:   "laptop gaming 3 juta gpu 8gb",
	})

	assert.NoError(t, err)
	assert.Empty(t, res.Recommendations)
	assert.Contains(t, res.Response, "tidak ada laptop yang cocok")
}

func TestChatResetClearsSession(t *testing.T) {
	svc, sessions := newChatFixture(&fakeProvider{err: errors.New("model down")})

	_, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionId: "sess-5",
		Message:   "laptop gaming budget 15 juta",
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Reset(context.Background(), "sess-5"))

	sess, found := sessions.Get("sess-5")
	assert.True(t, found)
	assert.Empty(t, sess.Messages)
	assert.Zero(t, sess.Preferences.Budget)
	assert.Empty(t, sess.RecommendedLaptops)
}

func TestChatHistory(t *testing.T) {
	svc, _ := newChatFixture(&fakeProvider{err: errors.New("model down")})

	_, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		SessionId: "sess-6",
		Message:   "laptop gaming budget 15 juta",
	})
	assert.NoError(t, err)

	history, err := svc.History(context.Background(), "sess-6")
	assert.NoError(t, err)
	assert.Len(t, history.Messages, 2)
	assert.Equal(t, "gaming", history.Preferences.UseCase)

	// Unknown sessions return an empty history, not an error.
	empty, err := svc.History(context.Background(), "unknown")
	assert.NoError(t, err)
	assert.Empty(t, empty.Messages)
}
