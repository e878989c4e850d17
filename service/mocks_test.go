package service

import (
	"context"
	"time"

	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/beka-birhanu/cleaner-api/path"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockRobot struct{ mock.Mock }

func (m *mockRobot) Run(start path.Coordinate, moves []path.Move) (*domain.Report, error) {
	args := m.Called(start, moves)
	report, _ := args.Get(0).(*domain.Report)
	return report, args.Error(1)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) Save(ctx context.Context, report *domain.Report) (int, error) {
	args := m.Called(ctx, report)
	return args.Int(0), args.Error(1)
}

func (m *mockReportRepo) ByID(ctx context.Context, id int) (*domain.Report, error) {
	args := m.Called(ctx, id)
	report, _ := args.Get(0).(*domain.Report)
	return report, args.Error(1)
}

type mockReportCache struct{ mock.Mock }

func (m *mockReportCache) Get(ctx context.Context, id int) (*domain.Report, error) {
	args := m.Called(ctx, id)
	report, _ := args.Get(0).(*domain.Report)
	return report, args.Error(1)
}

func (m *mockReportCache) Set(ctx context.Context, report *domain.Report) error {
	return m.Called(ctx, report).Error(0)
}

type mockSortedQueue struct{ mock.Mock }

func (m *mockSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	return m.Called(ctx, queueKey, score, member).Error(0)
}

func (m *mockSortedQueue) Tops(ctx context.Context, queueKey string, amount int64) ([]string, error) {
	args := m.Called(ctx, queueKey, amount)
	members, _ := args.Get(0).([]string)
	return members, args.Error(1)
}

func (m *mockSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return m.Called(ctx, queueKey).Get(0).(int64)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Save(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) ByID(id uuid.UUID) (*domain.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) ByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type mockTokenizer struct{ mock.Mock }

func (m *mockTokenizer) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	args := m.Called(claims, expTime)
	return args.String(0), args.Error(1)
}

func (m *mockTokenizer) Decode(token string) (map[string]interface{}, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(map[string]interface{})
	return claims, args.Error(1)
}
