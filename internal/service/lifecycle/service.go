package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dbekbolat/contract-notifier/internal/model"
	"github.com/dbekbolat/contract-notifier/internal/service/fanout"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/lifecycle/mock.go -package=mocks

type contractRepository interface {
	ListContracts(ctx context.Context) ([]model.Contract, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ContractStatus) error
}

type directoryService interface {
	ListByRole(ctx context.Context, role string) ([]model.Account, error)
	ListDepartmentManagers(ctx context.Context, departmentID uuid.UUID) ([]model.Account, error)
}

type fanoutEngine interface {
	FanOut(ctx context.Context, in fanout.Input) (int, error)
}

type eventPublisher interface {
	Publish(event model.TransitionEvent, strategy retry.Strategy) error
}

// Service recomputes contract lifecycle statuses and notifies interested
// parties about contracts entering the warning window or expiring.
type Service struct {
	contracts contractRepository
	directory directoryService
	fanout    fanoutEngine
	events    eventPublisher
	strategy  retry.Strategy
	window    time.Duration
}

func NewService(
	contracts contractRepository,
	directory directoryService,
	fan fanoutEngine,
	events eventPublisher,
	strategy retry.Strategy,
	window time.Duration,
) *Service {
	return &Service{
		contracts: contracts,
		directory: directory,
		fanout:    fan,
		events:    events,
		strategy:  strategy,
		window:    window,
	}
}

// Sweep reclassifies every contract against now and returns the transitions it
// found. Unchanged contracts produce nothing, so running the sweep twice with
// the same now is idempotent. A failure on one contract is logged and the
// sweep moves on; the stored status stays stale, so the next sweep retries it.
func (s *Service) Sweep(ctx context.Context, now time.Time) ([]model.TransitionEvent, error) {
	contracts, err := s.contracts.ListContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	var events []model.TransitionEvent

	for _, c := range contracts {
		next := model.ClassifyContract(c.EndDate, now, s.window)
		if next == c.Status {
			continue
		}

		if err := s.contracts.UpdateStatus(ctx, c.ID, next); err != nil {
			zlog.Logger.Error().Err(err).Str("contract", c.ID.String()).Msg("failed to persist contract status, skipping")
			continue
		}

		event := model.TransitionEvent{
			ContractID:   c.ID,
			ContractName: c.Name,
			OldStatus:    c.Status,
			NewStatus:    next,
			EndDate:      c.EndDate,
			AsOf:         now,
		}
		events = append(events, event)

		if err := s.events.Publish(event, s.strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("contract", c.ID.String()).Msg("failed to publish transition event")
		}

		if next != model.ContractExpiring && next != model.ContractExpired {
			continue
		}

		if err := s.notify(ctx, c, next); err != nil {
			zlog.Logger.Error().Err(err).Str("contract", c.ID.String()).Msg("failed to fan out contract transition")
		}
	}

	return events, nil
}

func (s *Service) notify(ctx context.Context, c model.Contract, status model.ContractStatus) error {
	candidates, err := s.directory.ListByRole(ctx, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("resolve admins: %w", err)
	}

	if c.DepartmentID != uuid.Nil {
		managers, err := s.directory.ListDepartmentManagers(ctx, c.DepartmentID)
		if err != nil {
			return fmt.Errorf("resolve department managers: %w", err)
		}

		candidates = append(candidates, managers...)
	}

	in := fanout.Input{
		Title:         title(status),
		Message:       renderMessage(c, status),
		Type:          typeTag(status),
		CorrelationID: c.ID,
		Candidates:    candidates,
		ExcludedActor: c.OwnerID,
	}

	count, err := s.fanout.FanOut(ctx, in)
	if err != nil {
		return fmt.Errorf("fan out: %w", err)
	}

	zlog.Logger.Info().Str("contract", c.ID.String()).Str("status", string(status)).Int("recipients", count).Msg("contract transition fanned out")

	return nil
}

func title(status model.ContractStatus) string {
	if status == model.ContractExpired {
		return "Contract expired"
	}

	return "Contract expiring soon"
}

func typeTag(status model.ContractStatus) string {
	if status == model.ContractExpired {
		return model.TypeContractExpired
	}

	return model.TypeContractExpiring
}

func renderMessage(c model.Contract, status model.ContractStatus) string {
	end := c.EndDate.Format("2006-01-02")

	if status == model.ContractExpired {
		return fmt.Sprintf("Contract %q expired on %s.", c.Name, end)
	}

	return fmt.Sprintf("Contract %q expires on %s.", c.Name, end)
}
