package booking

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

// CreateClaim записывает claim ресурса для бронирования.
// Вызывается только внутри транзакции бронирования.
func (r *Repository) CreateClaim(ctx context.Context, claim *domain.ResourceClaim) (*domain.ResourceClaim, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resource_claims").
		Columns(
			"booking_id",
			"resource_id",
			"booking_date",
			"start_min",
			"end_min",
			"segment",
		).
		Values(
			claim.BookingID,
			claim.ResourceID,
			claim.BookingDate,
			claim.StartMin,
			claim.EndMin,
			claim.Segment,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateClaim - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&claim.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateClaim - execute insert: %v", ErrExecQuery, err)
	}

	claim.CreatedAt = createdAt.Time

	return claim, nil
}

// GetClaimsByBookingID возвращает claims бронирования
func (r *Repository) GetClaimsByBookingID(ctx context.Context, bookingID int64) ([]domain.ResourceClaim, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"resource_id",
		"booking_date",
		"start_min",
		"end_min",
		"segment",
		"created_at",
	).
		From("resource_claims").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("start_min ASC, resource_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClaimsByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetClaimsByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClaims(rows)
}

// GetActiveClaimsByDate возвращает claims всех активных бронирований на дату.
// Внутри транзакции строки блокируются (FOR UPDATE OF resource_claims):
// это закрывает гонку между проверкой доступности и записью нового claim.
func (r *Repository) GetActiveClaimsByDate(ctx context.Context, date time.Time) ([]domain.ResourceClaim, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"rc.id",
		"rc.booking_id",
		"rc.resource_id",
		"rc.booking_date",
		"rc.start_min",
		"rc.end_min",
		"rc.segment",
		"rc.created_at",
	).
		From("resource_claims rc").
		Join("bookings b ON b.id = rc.booking_id").
		Where(squirrel.Eq{"rc.booking_date": date}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		OrderBy("rc.resource_id ASC, rc.start_min ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF rc")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveClaimsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveClaimsByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClaims(rows)
}

// DeleteClaimsByBookingID удаляет все claims бронирования.
// Используется при отмене и при замене claims в транзакции переноса.
func (r *Repository) DeleteClaimsByBookingID(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("resource_claims").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteClaimsByBookingID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteClaimsByBookingID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateClaimResource переносит claim на другой ресурс.
// Используется переносом на согласованную пару дорожек.
func (r *Repository) UpdateClaimResource(ctx context.Context, claimID, resourceID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("resource_claims").
		Set("resource_id", resourceID).
		Where(squirrel.Eq{"id": claimID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateClaimResource - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateClaimResource - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateClaimResource - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClaimNotFound
	}

	return nil
}

// scanClaims сканирует результаты запроса в слайс claims
func scanClaims(rows *sql.Rows) ([]domain.ResourceClaim, error) {
	claims := make([]domain.ResourceClaim, 0)

	for rows.Next() {
		var claim domain.ResourceClaim
		var createdAt sql.NullTime

		err := rows.Scan(
			&claim.ID,
			&claim.BookingID,
			&claim.ResourceID,
			&claim.BookingDate,
			&claim.StartMin,
			&claim.EndMin,
			&claim.Segment,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanClaims - scan row: %v", ErrScanRow, err)
		}

		claim.CreatedAt = createdAt.Time

		claims = append(claims, claim)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClaims - rows error: %v", ErrScanRow, err)
	}

	return claims, nil
}
