package dto

import "time"

type ChatMessageRequest struct {
	SessionId string `json:"session_id" validate:"required,min=1,max=128"`
	Message   string `json:"message" validate:"required,min=1,max=2000"`
}

type ChatMessageResponse struct {
	SessionId          string               `json:"session_id"`
	Response           string               `json:"response"`
	NeedsClarification bool                 `json:"needs_clarification"`
	Recommendations    []RecommendationItem `json:"recommendations,omitempty"`
	Preferences        PreferencesDTO       `json:"preferences"`
}

type ChatResetRequest struct {
	SessionId string `json:"session_id" validate:"required,min=1,max=128"`
}

type ChatTurnDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type PreferencesDTO struct {
	Budget  float64 `json:"budget"`
	UseCase string  `json:"use_case"`
}

type ChatHistoryResponse struct {
	SessionId   string         `json:"session_id"`
	Messages    []ChatTurnDTO  `json:"messages"`
	Preferences PreferencesDTO `json:"preferences"`
}
