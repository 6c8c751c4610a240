package store

import (
	"fmt"
	"strings"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Clarification topics.
const (
	TopicBudget  = "budget"
	TopicUseCase = "use_case"
)

// Turn is one message in the conversation history.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Preferences holds the accumulated user facts. Later turns overwrite by key;
// a later null never clears an earlier fact.
type Preferences struct {
	Budget  float64 `json:"budget,omitempty"`
	UseCase string  `json:"use_case,omitempty"`
}

// Session is the per-conversation memory: history, preference facts, already
// recommended laptops and already asked clarifications. It lives only for the
// session lifetime and is exclusively owned by the active turn — no durable
// storage, no cross-session sharing.
type Session struct {
	ID                  string      `json:"id"`
	Messages            []Turn      `json:"messages"`
	Preferences         Preferences `json:"preferences"`
	RecommendedLaptops  []string    `json:"recommended_laptops"`
	ClarificationsAsked []string    `json:"clarifications_asked"`
}

// NewSession creates an empty session.
func NewSession(id string) *Session {
	return &Session{ID: id}
}

// AddMessage appends a turn to the history.
func (s *Session) AddMessage(role, content string) {
	s.Messages = append(s.Messages, Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// UpdatePreferences merges new facts into the session (shallow overwrite by
// key). Zero values are skipped so a missing fact never erases a known one.
func (s *Session) UpdatePreferences(prefs Preferences) {
	if prefs.Budget > 0 {
		s.Preferences.Budget = prefs.Budget
	}
	if prefs.UseCase != "" {
		s.Preferences.UseCase = prefs.UseCase
	}
}

// AddRecommendedLaptop records a recommendation, deduplicated by display name
// in insertion order.
func (s *Session) AddRecommendedLaptop(name string) {
	for _, existing := range s.RecommendedLaptops {
		if existing == name {
			return
		}
	}
	s.RecommendedLaptops = append(s.RecommendedLaptops, name)
}

// MarkClarificationAsked records that a topic was asked. Idempotent: marking
// twice leaves the same state as marking once.
func (s *Session) MarkClarificationAsked(topic string) {
	for _, existing := range s.ClarificationsAsked {
		if existing == topic {
			return
		}
	}
	s.ClarificationsAsked = append(s.ClarificationsAsked, topic)
}

// ShouldAskClarification reports whether a topic still needs asking this
// session.
func (s *Session) ShouldAskClarification(topic string) bool {
	for _, existing := range s.ClarificationsAsked {
		if existing == topic {
			return false
		}
	}
	return true
}

// ContextSummary renders a bounded summary (preferences, last 3 recommended,
// last 2 turns truncated to 100 chars) for embedding into the remote prompt.
// Returns "" when there is nothing to summarize.
func (s *Session) ContextSummary() string {
	if len(s.Messages) == 0 && s.Preferences == (Preferences{}) {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nKONTEKS PERCAKAPAN SEBELUMNYA:\n")

	var prefs []string
	if s.Preferences.Budget > 0 {
		prefs = append(prefs, fmt.Sprintf("Budget: Rp %.0f", s.Preferences.Budget))
	}
	if s.Preferences.UseCase != "" {
		prefs = append(prefs, fmt.Sprintf("Kebutuhan: %s", s.Preferences.UseCase))
	}
	if len(prefs) > 0 {
		b.WriteString(fmt.Sprintf("- Preferensi user: %s\n", strings.Join(prefs, ", ")))
	}

	if len(s.RecommendedLaptops) > 0 {
		recent := s.RecommendedLaptops
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		b.WriteString(fmt.Sprintf("- Laptop sudah direkomendasikan: %s\n", strings.Join(recent, ", ")))
	}

	if len(s.Messages) >= 2 {
		b.WriteString("- Percakapan terakhir:\n")
		for _, msg := range s.Messages[len(s.Messages)-2:] {
			label := "AI"
			if msg.Role == RoleUser {
				label = "User"
			}
			content := msg.Content
			// Truncate on runes so multi-byte characters stay intact.
			if runes := []rune(content); len(runes) > 100 {
				content = string(runes[:100]) + "..."
			}
			b.WriteString(fmt.Sprintf("  [%s]: %s\n", label, content))
		}
	}

	return b.String()
}

// Clear resets all four stores.
func (s *Session) Clear() {
	s.Messages = nil
	s.Preferences = Preferences{}
	s.RecommendedLaptops = nil
	s.ClarificationsAsked = nil
}
