package tutor

// Explanation is an LLM-written follow-up for a missed O/X question.
type Explanation struct {
	Summary  string `json:"summary"`
	KeyPoint string `json:"keyPoint"`
	Tip      string `json:"tip"`
}

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the settings used by the CLI and TUI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.4,
	}
}
