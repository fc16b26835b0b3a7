package export

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"botforge/models"
)

// MockBotsRepository is a mock implementation of BotsRepository
type MockBotsRepository struct {
	mock.Mock
}

func (m *MockBotsRepository) GetBotByID(ctx context.Context, id, ownerID string) (mo.Option[*models.Bot], error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(mo.Option[*models.Bot]), args.Error(1)
}

// MockCommandsRepository is a mock implementation of CommandsRepository
type MockCommandsRepository struct {
	mock.Mock
}

func (m *MockCommandsRepository) GetCommandsByBotID(ctx context.Context, botID string) ([]*models.Command, error) {
	args := m.Called(ctx, botID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Command), args.Error(1)
}

// MockEnvVarsRepository is a mock implementation of EnvVarsRepository
type MockEnvVarsRepository struct {
	mock.Mock
}

func (m *MockEnvVarsRepository) GetEnvVarsByBotID(ctx context.Context, botID string) ([]*models.EnvVar, error) {
	args := m.Called(ctx, botID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EnvVar), args.Error(1)
}
