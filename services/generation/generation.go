package generation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"botforge/clients"
	"botforge/core"
	"botforge/core/commandspec"
	"botforge/models"
)

// MaxDescriptionLength bounds the free-form description sent to the model
const MaxDescriptionLength = 2000

type GenerationService struct {
	llmClient clients.LLMClient
}

func NewGenerationService(llmClient clients.LLMClient) *GenerationService {
	return &GenerationService{llmClient: llmClient}
}

// GenerateCommand asks the model for command source matching description and
// recovers the command's metadata from it. A failed model call is reported
// as core.ErrUpstream; an unexpected answer shape is not an error.
func (s *GenerationService) GenerateCommand(ctx context.Context, description string) (*models.GeneratedCommand, error) {
	log.Printf("📋 Starting to generate command from description")
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("description is required: %w", core.ErrInvalidInput)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description must be at most %d characters: %w", MaxDescriptionLength, core.ErrInvalidInput)
	}

	raw, err := s.llmClient.Complete(ctx, clients.CompletionRequest{
		SystemPrompt: generationSystemPrompt,
		UserPrompt:   fmt.Sprintf(generationUserPromptFormat, description),
		MaxTokens:    generationMaxTokens,
		Temperature:  generationTemperature,
	})
	if err != nil {
		log.Printf("❌ Command generation request failed: %v", err)
		return nil, fmt.Errorf("failed to generate command: %w: %w", core.ErrUpstream, err)
	}

	code := commandspec.UnwrapGeneratedCode(raw)
	descriptor := commandspec.Extract(code)

	log.Printf("📋 Completed successfully - generated command %s with %d options", descriptor.Name, len(descriptor.Options))
	return &models.GeneratedCommand{
		Code:    code,
		Command: descriptor,
		Schema:  commandspec.ToApplicationCommand(descriptor),
	}, nil
}
