package clients

// CompletionRequest is a single-turn prompt for an LLMClient
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int64
	Temperature  float64
}
