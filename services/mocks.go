package services

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"botforge/models"
)

// MockGenerationService is a mock implementation of GenerationService
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) GenerateCommand(ctx context.Context, description string) (*models.GeneratedCommand, error) {
	args := m.Called(ctx, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedCommand), args.Error(1)
}

// MockValidationService is a mock implementation of ValidationService
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) ValidateCommand(ctx context.Context, code string) (*models.ValidationResult, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ValidationResult), args.Error(1)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportBot(ctx context.Context, ownerID, botID string) (*models.BotExport, error) {
	args := m.Called(ctx, ownerID, botID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BotExport), args.Error(1)
}

// MockBotsService is a mock implementation of BotsService
type MockBotsService struct {
	mock.Mock
}

func (m *MockBotsService) CreateBot(ctx context.Context, ownerID, name, description string) (*models.Bot, error) {
	args := m.Called(ctx, ownerID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bot), args.Error(1)
}

func (m *MockBotsService) GetBotsByOwnerID(ctx context.Context, ownerID string) ([]*models.Bot, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Bot), args.Error(1)
}

func (m *MockBotsService) GetBotByID(ctx context.Context, ownerID, botID string) (mo.Option[*models.Bot], error) {
	args := m.Called(ctx, ownerID, botID)
	return args.Get(0).(mo.Option[*models.Bot]), args.Error(1)
}

func (m *MockBotsService) UpdateBot(
	ctx context.Context,
	ownerID, botID, name, description string,
) (*models.Bot, error) {
	args := m.Called(ctx, ownerID, botID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bot), args.Error(1)
}

func (m *MockBotsService) DeleteBot(ctx context.Context, ownerID, botID string) error {
	args := m.Called(ctx, ownerID, botID)
	return args.Error(0)
}

func (m *MockBotsService) AddCommand(
	ctx context.Context,
	ownerID, botID string,
	params CommandParams,
) (*models.Command, error) {
	args := m.Called(ctx, ownerID, botID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Command), args.Error(1)
}

func (m *MockBotsService) GetCommands(ctx context.Context, ownerID, botID string) ([]*models.Command, error) {
	args := m.Called(ctx, ownerID, botID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Command), args.Error(1)
}

func (m *MockBotsService) GetCommandByID(
	ctx context.Context,
	ownerID, botID, commandID string,
) (mo.Option[*models.Command], error) {
	args := m.Called(ctx, ownerID, botID, commandID)
	return args.Get(0).(mo.Option[*models.Command]), args.Error(1)
}

func (m *MockBotsService) UpdateCommandCode(
	ctx context.Context,
	ownerID, botID, commandID, code string,
) (*models.Command, error) {
	args := m.Called(ctx, ownerID, botID, commandID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Command), args.Error(1)
}

func (m *MockBotsService) DeleteCommand(ctx context.Context, ownerID, botID, commandID string) error {
	args := m.Called(ctx, ownerID, botID, commandID)
	return args.Error(0)
}

func (m *MockBotsService) AddEnvVar(
	ctx context.Context,
	ownerID, botID, key, description string,
) (*models.EnvVar, error) {
	args := m.Called(ctx, ownerID, botID, key, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EnvVar), args.Error(1)
}

func (m *MockBotsService) GetEnvVars(ctx context.Context, ownerID, botID string) ([]*models.EnvVar, error) {
	args := m.Called(ctx, ownerID, botID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EnvVar), args.Error(1)
}

func (m *MockBotsService) DeleteEnvVar(ctx context.Context, ownerID, botID, envVarID string) error {
	args := m.Called(ctx, ownerID, botID, envVarID)
	return args.Error(0)
}
