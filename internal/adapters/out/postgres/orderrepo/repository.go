package orderrepo

import (
	"context"
	"errors"

	"jibekjoly/internal/core/domain/model/kernel"
	"jibekjoly/internal/core/domain/model/order"
	"jibekjoly/internal/core/ports"
	"jibekjoly/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	uniqueViolation      = "23505"
	orderCodeConstraint  = "orders_unique_order_id_key"
	claimConflictReason  = "order is no longer claimable"
	staleVersionReason   = "order was changed by another request"
	versionedWhereClause = "id = ? AND version = ?"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the aggregates written through the repository so the
// unit of work can store their events on commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order inside a savepoint, so a code collision leaves the
// surrounding transaction usable and is reported as ports.ErrOrderCodeTaken.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&dto).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == orderCodeConstraint {
			return ports.ErrOrderCodeTaken
		}
		return err
	}

	aggregate.MarkPersisted(kernel.ID(dto.ID))
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order if nobody changed it since it was read.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where(versionedWhereClause, dto.ID, aggregate.Version()).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", dto.ID, staleVersionReason)
	}

	aggregate.MarkPersisted(aggregate.ID())
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Claim writes the claimed order only while the stored row is still at the read
// version, unassigned and in the processing status.
func (r *GormOrderRepository) Claim(
	ctx context.Context,
	aggregate *order.Order,
	processing order.StatusDefinition,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where(versionedWhereClause, dto.ID, aggregate.Version()).
		Where("courier_id IS NULL AND status_id = ?", processing.ID().Int64()).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", dto.ID, claimConflictReason)
	}

	aggregate.MarkPersisted(aggregate.ID())
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if id.IsZero() {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Status").Take(&dto, id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}
