package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	"github.com/m04kA/AXB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AXB-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"activity",
	"party_size",
	"booking_date",
	"start_min",
	"end_min",
	"duration_minutes",
	"axe_duration_minutes",
	"duckpin_duration_minutes",
	"axe_first",
	"party_rooms",
	"party_area_minutes",
	"party_area_timing",
	"customer_name",
	"customer_phone",
	"customer_email",
	"payment_disposition",
	"payment_charge_id",
	"price_total",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями и claims ресурсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её — при создании
// бронирования с проверкой доступности это обязательно (иначе race condition
// между "проверили свободно" и "записали claim").
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var rooms interface{}
	var areaMinutes, areaTiming interface{}
	if booking.PartyArea != nil {
		rooms = pq.Array(booking.PartyArea.Rooms)
		areaMinutes = booking.PartyArea.DurationMinutes
		areaTiming = string(booking.PartyArea.Timing)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"activity",
			"party_size",
			"booking_date",
			"start_min",
			"end_min",
			"duration_minutes",
			"axe_duration_minutes",
			"duckpin_duration_minutes",
			"axe_first",
			"party_rooms",
			"party_area_minutes",
			"party_area_timing",
			"customer_name",
			"customer_phone",
			"customer_email",
			"payment_disposition",
			"payment_charge_id",
			"price_total",
			"status",
			"notes",
		).
		Values(
			booking.Activity,
			booking.PartySize,
			booking.BookingDate,
			booking.StartMin,
			booking.EndMin,
			booking.DurationMinutes,
			booking.AxeDurationMinutes,
			booking.DuckpinDurationMinutes,
			booking.AxeFirst,
			rooms,
			areaMinutes,
			areaTiming,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.PaymentDisposition,
			booking.PaymentChargeID,
			booking.PriceTotal,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с его claims
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	claims, err := r.GetClaimsByBookingID(ctx, id)
	if err != nil {
		return nil, err
	}
	booking.Claims = claims

	return booking, nil
}

// ListByDate возвращает бронирования на дату.
// По умолчанию только активные; includeInactive добавляет отменённые.
func (r *Repository) ListByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_min ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByPhone возвращает бронирования клиента по номеру телефона,
// сначала новые. Используется стойкой регистрации.
func (r *Repository) ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("booking_date DESC, start_min DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateNotes обновляет заметки персонала по бронированию
func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateSchedule перезаписывает расписание и цену бронирования при переносе
// или правке состава. Вызывается только внутри транзакции, вместе с заменой claims.
func (r *Repository) UpdateSchedule(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var rooms interface{}
	var areaMinutes, areaTiming interface{}
	if booking.PartyArea != nil {
		rooms = pq.Array(booking.PartyArea.Rooms)
		areaMinutes = booking.PartyArea.DurationMinutes
		areaTiming = string(booking.PartyArea.Timing)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("activity", booking.Activity).
		Set("party_size", booking.PartySize).
		Set("booking_date", booking.BookingDate).
		Set("start_min", booking.StartMin).
		Set("end_min", booking.EndMin).
		Set("duration_minutes", booking.DurationMinutes).
		Set("axe_duration_minutes", booking.AxeDurationMinutes).
		Set("duckpin_duration_minutes", booking.DuckpinDurationMinutes).
		Set("axe_first", booking.AxeFirst).
		Set("party_rooms", rooms).
		Set("party_area_minutes", areaMinutes).
		Set("party_area_timing", areaTiming).
		Set("price_total", booking.PriceTotal).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку бронирования
func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var booking domain.Booking
	var rooms pq.StringArray
	var areaMinutes sql.NullInt64
	var areaTiming sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&booking.ID,
		&booking.Activity,
		&booking.PartySize,
		&booking.BookingDate,
		&booking.StartMin,
		&booking.EndMin,
		&booking.DurationMinutes,
		&booking.AxeDurationMinutes,
		&booking.DuckpinDurationMinutes,
		&booking.AxeFirst,
		&rooms,
		&areaMinutes,
		&areaTiming,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.PaymentDisposition,
		&booking.PaymentChargeID,
		&booking.PriceTotal,
		&booking.Status,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	if len(rooms) > 0 {
		booking.PartyArea = &domain.PartyAreaSelection{
			Rooms:           rooms,
			DurationMinutes: int(areaMinutes.Int64),
			Timing:          domain.OverlayTiming(areaTiming.String),
		}
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
