// Package llm provides the model client abstraction used by the scoring
// oracle. It centralizes provider configuration so the rest of the pipeline
// never touches provider SDK types.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for simple extraction tasks (requirement parsing).
	TierLite ModelTier = "lite"
	// TierStandard is for scoring, which needs more reasoning.
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to lite.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
