package factory

import (
	"fmt"
	"time"

	"twin-chat-be/internal/config"
	"twin-chat-be/pkg/llm"
	"twin-chat-be/pkg/llm/gemini"
	"twin-chat-be/pkg/llm/ollama"
)

func NewLLMProvider(cfg *config.Config) (llm.LLMProvider, error) {
	timeout := time.Duration(cfg.Ai.TimeoutSeconds) * time.Second

	switch cfg.Ai.LLMProvider {
	case "gemini":
		return gemini.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.LLMModel, timeout), nil
	case "ollama":
		baseURL := cfg.Ai.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Ai.LLMModel, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Ai.LLMProvider)
	}
}
