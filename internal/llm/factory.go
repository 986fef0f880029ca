package llm

import (
	"fmt"
	"strings"

	"github.com/koreg/sanctia/internal/model"
)

// NewProvider creates a provider from configuration. An empty provider
// name returns (nil, nil): the digest is simply disabled.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	cfg := DefaultConfig()
	cfg.Provider = modelConfig.Provider
	cfg.Model = modelConfig.Model
	cfg.APIKey = modelConfig.APIKey
	cfg.BaseURL = modelConfig.BaseURL
	return cfg
}
