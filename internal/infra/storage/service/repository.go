package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/provora/SchedulingService/internal/domain"
	"github.com/provora/SchedulingService/pkg/dbmetrics"
	"github.com/provora/SchedulingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов (*sql.DB или *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor

// serviceColumns полный набор колонок таблицы service_definitions
var serviceColumns = []string{
	"id",
	"owner_id",
	"name",
	"duration_minutes",
	"price",
	"currency",
	"weekly_availability",
	"booking_buffer_minutes",
	"advance_booking_hours",
	"max_advance_booking_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с определениями услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое определение услуги
func (r *Repository) Create(ctx context.Context, svc *domain.ServiceDefinition) (*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_definitions").
		Columns(
			"owner_id",
			"name",
			"duration_minutes",
			"price",
			"currency",
			"weekly_availability",
			"booking_buffer_minutes",
			"advance_booking_hours",
			"max_advance_booking_hours",
		).
		Values(
			svc.OwnerID,
			svc.Name,
			svc.DurationMinutes,
			svc.Price,
			svc.Currency,
			svc.WeeklyAvailability,
			svc.BookingBufferMinutes,
			svc.AdvanceBookingHours,
			svc.MaxAdvanceBookingHours,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// GetByID получает определение услуги по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("service_definitions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanService(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByOwner получает все услуги провайдера
func (r *Repository) GetByOwner(ctx context.Context, ownerID int64) ([]*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("service_definitions").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.ServiceDefinition, 0)
	for rows.Next() {
		svc, err := r.scanService(rows, "GetByOwner")
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update обновляет определение услуги целиком.
// Проверка прав владельца выполняется на уровне сервиса каталога.
func (r *Repository) Update(ctx context.Context, svc *domain.ServiceDefinition) (*domain.ServiceDefinition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("service_definitions").
		Set("name", svc.Name).
		Set("duration_minutes", svc.DurationMinutes).
		Set("price", svc.Price).
		Set("currency", svc.Currency).
		Set("weekly_availability", svc.WeeklyAvailability).
		Set("booking_buffer_minutes", svc.BookingBufferMinutes).
		Set("advance_booking_hours", svc.AdvanceBookingHours).
		Set("max_advance_booking_hours", svc.MaxAdvanceBookingHours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": svc.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanService(row rowScanner, op string) (*domain.ServiceDefinition, error) {
	var svc domain.ServiceDefinition
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.OwnerID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.Currency,
		&svc.WeeklyAvailability,
		&svc.BookingBufferMinutes,
		&svc.AdvanceBookingHours,
		&svc.MaxAdvanceBookingHours,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, op, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}
