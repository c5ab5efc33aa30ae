package controller

import (
	"context"

	"embedchat-go-server/domain/entity"
	"embedchat-go-server/domain/provider"

	"github.com/stretchr/testify/mock"
)

// ========== MockUserRepository ==========
// 控制器测试需要真实的 WebhookUseCase，仓库与上游客户端打桩

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByWorkOSID(workosID string) (*entity.User, error) {
	args := m.Called(workosID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByWorkOSID(workosID string) error {
	args := m.Called(workosID)
	return args.Error(0)
}

// ========== MockIdentityProvider ==========

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CheckUser(ctx context.Context, workosID string) (provider.Presence, error) {
	args := m.Called(workosID)
	return args.Get(0).(provider.Presence), args.Error(1)
}

// ========== MockWebhookEventRepository ==========

type MockWebhookEventRepository struct {
	mock.Mock
}

func (m *MockWebhookEventRepository) Create(evt *entity.WebhookEvent) error {
	args := m.Called(evt)
	return args.Error(0)
}

func (m *MockWebhookEventRepository) UpdateStatus(id, status, message string) error {
	args := m.Called(id, status, message)
	return args.Error(0)
}

func (m *MockWebhookEventRepository) ListRecent(limit int) ([]entity.WebhookEvent, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.WebhookEvent), args.Error(1)
}
