package hitpoints

//go:generate mockgen -destination=mock/mock_service.go -package=mockhitpointsservice -source=service.go

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
	hitpointsRepo "github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories/hitpoints"
)

// Repository is an alias for the hit point repository interface
type Repository = hitpointsRepo.Repository

// Service defines the hit point service interface
type Service interface {
	// CreateOrUpdate starts a new generation of the record: full hit points,
	// no temporary hit points and freshly folded defenses
	CreateOrUpdate(ctx context.Context, input *CreateOrUpdateInput) (*domain.Record, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*domain.Record, error)

	// DealDamage applies the damage instances in order
	DealDamage(ctx context.Context, input *DealDamageInput) (*domain.Record, error)

	// Heal restores current hit points up to the total
	Heal(ctx context.Context, input *AmountInput) (*domain.Record, error)

	// AddTemporaryHitPoints grants temporary hit points; grants do not stack
	AddTemporaryHitPoints(ctx context.Context, input *AmountInput) (*domain.Record, error)

	// Delete removes a record
	Delete(ctx context.Context, id string) error

	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}

// DefenseInput is one (damage type, defense) pair as received from a client
type DefenseInput struct {
	Type    string
	Defense string
}

// CreateOrUpdateInput contains the data needed to create or replace a record
type CreateOrUpdateInput struct {
	ID        string
	HitPoints int
	Defenses  []DefenseInput
}

// DamageInput is one damage instance as received from a client
type DamageInput struct {
	Type   string
	Amount int
}

// DealDamageInput contains the ordered damage instances for one record
type DealDamageInput struct {
	ID     string
	Damage []DamageInput
}

// AmountInput carries a single positive amount for heal and temporary grants
type AmountInput struct {
	ID     string
	Amount int
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository  // Required
	Logger     *zap.Logger // Optional, no-op when nil
}

// NewService creates a new hit point service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repository: cfg.Repository,
		logger:     logger.Named("hitpoints"),
	}
}

// CreateOrUpdate builds a fresh record and overwrites whatever was stored under the ID
func (s *service) CreateOrUpdate(ctx context.Context, input *CreateOrUpdateInput) (*domain.Record, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid create or update input").
			WithMeta("operation", "CreateOrUpdate")
	}

	defenses := make([]domain.Defense, 0, len(input.Defenses))
	for _, d := range input.Defenses {
		defenses = append(defenses, domain.Defense{
			Type:    domain.DamageType(d.Type),
			Defense: domain.DefenseType(d.Defense),
		})
	}

	record, err := domain.New(input.ID, input.HitPoints, defenses)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Put(ctx, record); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save hit point record '%s'", input.ID).
			WithMeta("record_id", input.ID)
	}

	s.logger.Info("hit point record created",
		zap.String("record_id", record.ID),
		zap.Int("total", record.Total),
		zap.Int("defenses", len(record.Defenses)),
	)
	return record, nil
}

// Get retrieves a record by ID
func (s *service) Get(ctx context.Context, id string) (*domain.Record, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("record ID is required").
			WithMeta(dnderr.MetaFields, []string{"id is required"})
	}

	record, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get hit point record '%s'", id).
			WithMeta("record_id", id)
	}
	return record, nil
}

// DealDamage resolves every instance against the record's defenses
func (s *service) DealDamage(ctx context.Context, input *DealDamageInput) (*domain.Record, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid deal damage input").
			WithMeta("operation", "DealDamage")
	}

	damage := make([]domain.Damage, 0, len(input.Damage))
	for _, d := range input.Damage {
		damage = append(damage, domain.Damage{Type: domain.DamageType(d.Type), Amount: d.Amount})
	}

	var before int
	record, err := s.repository.Update(ctx, input.ID, func(current *domain.Record) (*domain.Record, error) {
		before = current.Current + current.Temporary
		return domain.DealDamage(current, damage)
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to deal damage to '%s'", input.ID).
			WithMeta("record_id", input.ID)
	}

	s.logger.Info("damage dealt",
		zap.String("record_id", record.ID),
		zap.Int("instances", len(damage)),
		zap.Int("lost", before-record.Current-record.Temporary),
		zap.Int("current", record.Current),
		zap.Int("temporary", record.Temporary),
	)
	if record.IsDown() {
		s.logger.Debug("record reduced to zero hit points", zap.String("record_id", record.ID))
	}
	return record, nil
}

// Heal restores current hit points, never above total
func (s *service) Heal(ctx context.Context, input *AmountInput) (*domain.Record, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid heal input").
			WithMeta("operation", "Heal")
	}

	record, err := s.repository.Update(ctx, input.ID, func(current *domain.Record) (*domain.Record, error) {
		return domain.Heal(current, input.Amount)
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to heal '%s'", input.ID).
			WithMeta("record_id", input.ID)
	}

	s.logger.Info("healed",
		zap.String("record_id", record.ID),
		zap.Int("amount", input.Amount),
		zap.Int("current", record.Current),
	)
	return record, nil
}

// AddTemporaryHitPoints keeps the larger of the existing and granted pools
func (s *service) AddTemporaryHitPoints(ctx context.Context, input *AmountInput) (*domain.Record, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid temporary hit points input").
			WithMeta("operation", "AddTemporaryHitPoints")
	}

	record, err := s.repository.Update(ctx, input.ID, func(current *domain.Record) (*domain.Record, error) {
		return domain.AddTemporaryHitPoints(current, input.Amount)
	})
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to add temporary hit points to '%s'", input.ID).
			WithMeta("record_id", input.ID)
	}

	s.logger.Info("temporary hit points granted",
		zap.String("record_id", record.ID),
		zap.Int("amount", input.Amount),
		zap.Int("temporary", record.Temporary),
	)
	return record, nil
}

// Delete removes a record
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("record ID is required").
			WithMeta(dnderr.MetaFields, []string{"id is required"})
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return dnderr.Wrapf(err, "failed to delete hit point record '%s'", id).
			WithMeta("record_id", id)
	}

	s.logger.Info("hit point record deleted", zap.String("record_id", id))
	return nil
}

// Ping checks the repository
func (s *service) Ping(ctx context.Context) error {
	if err := s.repository.Ping(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "hit point store unreachable")
	}
	return nil
}
