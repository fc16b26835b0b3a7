package validation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"botforge/clients"
	"botforge/core"
	corevalidation "botforge/core/validation"
	"botforge/models"
)

type ValidationService struct {
	llmClient clients.LLMClient
}

func NewValidationService(llmClient clients.LLMClient) *ValidationService {
	return &ValidationService{llmClient: llmClient}
}

// ValidateCommand asks the model to review code. Whatever the model answers
// is normalized into a result; only a failed call is an error. The result is
// advisory and never applied to stored commands here.
func (s *ValidationService) ValidateCommand(ctx context.Context, code string) (*models.ValidationResult, error) {
	log.Printf("📋 Starting to validate command code (%d bytes)", len(code))
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("code is required for validation: %w", core.ErrInvalidInput)
	}

	raw, err := s.llmClient.Complete(ctx, clients.CompletionRequest{
		SystemPrompt: validationSystemPrompt,
		UserPrompt:   fmt.Sprintf(validationUserPromptFormat, code),
		MaxTokens:    validationMaxTokens,
		Temperature:  validationTemperature,
	})
	if err != nil {
		log.Printf("❌ Command validation request failed: %v", err)
		return nil, fmt.Errorf("failed to validate command: %w: %w", core.ErrUpstream, err)
	}

	result := corevalidation.Normalize(raw, code)

	log.Printf("📋 Completed successfully - validation isValid=%t with %d errors", result.IsValid, len(result.Errors))
	return &result, nil
}
