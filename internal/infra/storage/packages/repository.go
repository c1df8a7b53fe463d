package packages

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	"github.com/m04kA/SMC-ConciergeBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConciergeBooking/pkg/psqlbuilder"
)

const tableName = "saved_packages"

var selectColumns = []string{
	"id",
	"owner_id",
	"name",
	"start_date",
	"end_date",
	"guests",
	"items",
	"total",
	"created_at",
	"updated_at",
}

// Repository репозиторий сохраненных пакетов (PostgreSQL)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save создает пакет или обновляет пакет того же владельца
// Пакет с тем же id у другого владельца не перезаписывается - ErrPackageNotFound
func (r *Repository) Save(ctx context.Context, pkg *domain.SavedPackage) (*domain.SavedPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	items, err := json.Marshal(pkg.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeItems, err)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "owner_id", "name", "start_date", "end_date", "guests", "items", "total").
		Values(
			pkg.ID,
			pkg.OwnerID,
			pkg.Name,
			nullableDate(pkg.StartDate),
			nullableDate(pkg.EndDate),
			pkg.Guests,
			items,
			pkg.Total,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			guests = EXCLUDED.guests,
			items = EXCLUDED.items,
			total = EXCLUDED.total,
			updated_at = NOW()
		WHERE saved_packages.owner_id = EXCLUDED.owner_id
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&pkg.CreatedAt, &pkg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return pkg, nil
}

// List возвращает пакеты владельца, новые первыми
func (r *Repository) List(ctx context.Context, ownerID string) ([]*domain.SavedPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.SavedPackage, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// Delete удаляет пакет владельца
func (r *Repository) Delete(ctx context.Context, ownerID, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

// DeleteOlderThan удаляет пакеты, не обновлявшиеся с момента before
func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

func scanPackage(rows *sql.Rows) (*domain.SavedPackage, error) {
	var (
		pkg                domain.SavedPackage
		startDate, endDate sql.NullTime
		items              []byte
	)

	err := rows.Scan(
		&pkg.ID,
		&pkg.OwnerID,
		&pkg.Name,
		&startDate,
		&endDate,
		&pkg.Guests,
		&items,
		&pkg.Total,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(items, &pkg.Items); err != nil {
		return nil, fmt.Errorf("%w: items: %v", ErrScanRow, err)
	}
	if startDate.Valid {
		pkg.StartDate = startDate.Time.Format(domain.DateFormat)
	}
	if endDate.Valid {
		pkg.EndDate = endDate.Time.Format(domain.DateFormat)
	}

	return &pkg, nil
}

// nullableDate пустая дата пишется как NULL
func nullableDate(date string) interface{} {
	if date == "" {
		return nil
	}
	return date
}
