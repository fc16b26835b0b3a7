package clients

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLLMClient is a mock implementation of LLMClient
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

// NewMockLLMClient creates a new mock client for testing
func NewMockLLMClient() *MockLLMClient {
	return &MockLLMClient{}
}

// WithCompletion configures the mock to answer every request with text
func (m *MockLLMClient) WithCompletion(text string) *MockLLMClient {
	m.On("Complete", mock.Anything, mock.Anything).Return(text, nil)
	return m
}

// WithError configures the mock to fail every request with err
func (m *MockLLMClient) WithError(err error) *MockLLMClient {
	m.On("Complete", mock.Anything, mock.Anything).Return("", err)
	return m
}
