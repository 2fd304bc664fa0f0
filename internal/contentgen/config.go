package contentgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
// Temperature stays fairly high so repeated sessions on the same
// word produce fresh passages.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.8,
	}
}
