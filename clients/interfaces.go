package clients

import (
	"context"
)

// LLMClient sends a single system + user prompt pair to a hosted language
// model and returns the text of its reply.
type LLMClient interface {
	Complete(ctx context.Context, request CompletionRequest) (string, error)
}
