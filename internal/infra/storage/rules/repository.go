package rules

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	"github.com/m04kA/AXB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AXB-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий blackout-окон и буферных правил.
// Правила читаются на каждый запрос без кеширования: консистентность
// с правками персонала важнее латентности.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBlackoutsByDate возвращает blackout-окна на дату
func (r *Repository) ListBlackoutsByDate(ctx context.Context, date time.Time) ([]domain.BlackoutRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"blackout_date",
		"activity",
		"start_min",
		"end_min",
		"reason",
		"created_at",
		"updated_at",
	).
		From("blackout_rules").
		Where(squirrel.Eq{"blackout_date": date}).
		OrderBy("start_min ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlackoutsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlackoutsByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]domain.BlackoutRule, 0)
	for rows.Next() {
		var rule domain.BlackoutRule
		var activity sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.Date,
			&activity,
			&rule.StartMin,
			&rule.EndMin,
			&rule.Reason,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListBlackoutsByDate - scan row: %v", ErrScanRow, err)
		}

		if activity.Valid {
			a := domain.ActivityType(activity.String)
			rule.Activity = &a
		}
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		blackouts = append(blackouts, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlackoutsByDate - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}

// ListBuffers возвращает все буферные правила
func (r *Repository) ListBuffers(ctx context.Context) ([]domain.BufferRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"activity",
		"before_minutes",
		"after_minutes",
		"created_at",
		"updated_at",
	).
		From("buffer_rules").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBuffers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBuffers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	buffers := make([]domain.BufferRule, 0)
	for rows.Next() {
		var rule domain.BufferRule
		var activity sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&activity,
			&rule.BeforeMinutes,
			&rule.AfterMinutes,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListBuffers - scan row: %v", ErrScanRow, err)
		}

		if activity.Valid {
			a := domain.ActivityType(activity.String)
			rule.Activity = &a
		}
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		buffers = append(buffers, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBuffers - rows error: %v", ErrScanRow, err)
	}

	return buffers, nil
}
