package resource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	"github.com/m04kA/AXB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/AXB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения физических ресурсов площадки.
// Ресурсы настраиваются персоналом вне сервиса; движок их только читает.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все ресурсы площадки в стабильном порядке сортировки
func (r *Repository) List(ctx context.Context) ([]domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"type",
		"active",
		"sort_position",
		"created_at",
		"updated_at",
	).
		From("resources").
		OrderBy("sort_position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanResources(rows)
}

// scanResources сканирует результаты запроса в слайс ресурсов
func (r *Repository) scanResources(rows *sql.Rows) ([]domain.Resource, error) {
	resources := make([]domain.Resource, 0)

	for rows.Next() {
		var res domain.Resource
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Type,
			&res.Active,
			&res.SortPosition,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanResources - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanResources - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}
