package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dbekbolat/contract-notifier/internal/clock"
	"github.com/dbekbolat/contract-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/directory/mock.go -package=mocks

type directoryRepository interface {
	ListByRole(ctx context.Context, role string) ([]model.Account, error)
	ListDepartmentManagers(ctx context.Context, departmentID uuid.UUID) ([]model.Account, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service is a read-through cache over the directory repository. A sweep
// resolves the same role holders once per expiring contract, so lookups are
// cached under date-scoped keys: each day's sweep hits the database at most
// once per distinct query, and entries go stale with the calendar rather than
// needing invalidation when roles change.
type Service struct {
	repo     directoryRepository
	cache    cache
	clock    clock.Clock
	strategy retry.Strategy
}

func NewService(repo directoryRepository, cache cache, clk clock.Clock, strategy retry.Strategy) *Service {
	return &Service{repo: repo, cache: cache, clock: clk, strategy: strategy}
}

// ListByRole resolves all accounts holding the given role.
func (s *Service) ListByRole(ctx context.Context, role string) ([]model.Account, error) {
	key := fmt.Sprintf("directory:%s:role:%s", s.day(), role)

	return s.lookup(ctx, key, func() ([]model.Account, error) {
		return s.repo.ListByRole(ctx, role)
	})
}

// ListDepartmentManagers resolves all manager accounts of a department.
func (s *Service) ListDepartmentManagers(ctx context.Context, departmentID uuid.UUID) ([]model.Account, error) {
	key := fmt.Sprintf("directory:%s:managers:%s", s.day(), departmentID)

	return s.lookup(ctx, key, func() ([]model.Account, error) {
		return s.repo.ListDepartmentManagers(ctx, departmentID)
	})
}

func (s *Service) day() string {
	return s.clock.Now().UTC().Format("2006-01-02")
}

func (s *Service) lookup(ctx context.Context, key string, fetch func() ([]model.Account, error)) ([]model.Account, error) {
	cached, err := s.cache.GetWithRetry(ctx, s.strategy, key)
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to get directory entry from cache")
	}

	if err == nil {
		var accounts []model.Account
		if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
			return accounts, nil
		}

		zlog.Logger.Warn().Str("key", key).Msg("corrupt directory cache entry, refetching")
	}

	accounts, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("directory lookup: %w", err)
	}

	encoded, err := json.Marshal(accounts)
	if err != nil {
		return accounts, nil
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, key, string(encoded)); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to cache directory entry")
	}

	return accounts, nil
}
