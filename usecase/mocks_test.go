package usecase

import (
	"context"
	"sync"

	"embedchat-go-server/domain/entity"
	"embedchat-go-server/domain/provider"

	"github.com/stretchr/testify/mock"
)

// ========== MockUserRepository ==========
// 实现 repository.UserRepository 接口，用于 WebhookUseCase 的交互断言

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByWorkOSID(workosID string) (*entity.User, error) {
	args := m.Called(workosID)
	// 处理 nil 情况
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
// 实现 provider.IdentityProvider 接口，模拟上游存在性检查的三态结果

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CheckUser(ctx context.Context, workosID string) (provider.Presence, error) {
	args := m.Called(workosID)
	return args.Get(0).(provider.Presence), args.Error(1)
}

// ========== fakeUserStore ==========
// 带唯一约束语义的内存用户表，用于幂等/收敛测试断言最终状态
// 互斥锁模拟数据库 upsert/delete 的单语句原子性

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*entity.User // workos_id → 行
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*entity.User{}}
}

func (s *fakeUserStore) GetByWorkOSID(workosID string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[workosID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) Upsert(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.users[user.WorkOSID]; ok {
		// ON CONFLICT DO UPDATE：只更新 email 和 updated_at
		existing.Email = user.Email
		existing.UpdatedAt = user.UpdatedAt
		return nil
	}
	copied := *user
	s.users[user.WorkOSID] = &copied
	return nil
}

func (s *fakeUserStore) DeleteByWorkOSID(workosID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, workosID)
	return nil
}

// rowCount 指定 workos_id 的行数（唯一约束下只可能是 0 或 1）
func (s *fakeUserStore) rowCount(workosID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[workosID]; ok {
		return 1
	}
	return 0
}
