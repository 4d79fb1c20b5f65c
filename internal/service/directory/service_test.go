package directory

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/dbekbolat/contract-notifier/internal/clock"
	mocks "github.com/dbekbolat/contract-notifier/internal/mocks/service/directory"
	"github.com/dbekbolat/contract-notifier/internal/model"
)

var now = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func TestService_ListByRole_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockdirectoryRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	strategy := retry.Strategy{}
	svc := NewService(repo, cacheMock, clock.Fixed(now), strategy)

	admins := []model.Account{{ID: uuid.New(), Email: "admin@example.com", Role: model.RoleAdmin}}
	encoded, err := json.Marshal(admins)
	require.NoError(t, err)

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "directory:2025-05-01:role:admin").Return(string(encoded), nil)

	got, err := svc.ListByRole(context.Background(), model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, admins, got)
}

func TestService_ListByRole_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockdirectoryRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	strategy := retry.Strategy{}
	svc := NewService(repo, cacheMock, clock.Fixed(now), strategy)

	admins := []model.Account{{ID: uuid.New(), Email: "admin@example.com", Role: model.RoleAdmin}}
	key := "directory:2025-05-01:role:admin"

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, key).Return("", redis.Nil)
	repo.EXPECT().ListByRole(gomock.Any(), model.RoleAdmin).Return(admins, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, key, gomock.Any()).Return(nil)

	got, err := svc.ListByRole(context.Background(), model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, admins, got)
}

func TestService_ListDepartmentManagers_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockdirectoryRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	strategy := retry.Strategy{}
	svc := NewService(repo, cacheMock, clock.Fixed(now), strategy)

	department := uuid.New()
	managers := []model.Account{{ID: uuid.New(), Email: "manager@example.com", Role: model.RoleManager, DepartmentID: department}}
	key := "directory:2025-05-01:managers:" + department.String()

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, key).Return("", redis.Nil)
	repo.EXPECT().ListDepartmentManagers(gomock.Any(), department).Return(managers, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, key, gomock.Any()).Return(nil)

	got, err := svc.ListDepartmentManagers(context.Background(), department)
	require.NoError(t, err)
	assert.Equal(t, managers, got)
}

func TestService_ListByRole_CorruptCacheEntryRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockdirectoryRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	strategy := retry.Strategy{}
	svc := NewService(repo, cacheMock, clock.Fixed(now), strategy)

	key := "directory:2025-05-01:role:admin"

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, key).Return("{not json", nil)
	repo.EXPECT().ListByRole(gomock.Any(), model.RoleAdmin).Return(nil, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, key, gomock.Any()).Return(nil)

	_, err := svc.ListByRole(context.Background(), model.RoleAdmin)
	require.NoError(t, err)
}
