package factory

import (
	"fmt"

	"laptop-dss-be/pkg/llm"
	"laptop-dss-be/pkg/llm/apifree"
	"laptop-dss-be/pkg/llm/ollama"
)

func NewProvider(providerType, modelName, baseURL string) (llm.Provider, error) {
	switch providerType {
	case "apifree":
		if baseURL == "" {
			baseURL = "https://apifreellm.com/api/chat" // Default
		}
		return apifree.NewApiFreeProvider(baseURL), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
