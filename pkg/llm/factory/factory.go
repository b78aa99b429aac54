package factory

import (
	"fmt"
	"time"

	"mentorlink-be/pkg/llm"
	"mentorlink-be/pkg/llm/ai21"
	"mentorlink-be/pkg/llm/huggingface"
	"mentorlink-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, baseURL, apiKey string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "ai21":
		return ai21.NewAI21Provider(apiKey, baseURL, modelName, timeout), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(apiKey, baseURL, modelName, timeout), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
