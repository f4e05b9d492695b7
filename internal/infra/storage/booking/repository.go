package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/psqlbuilder"
)

// Schema таблица бронирований; seq задает порядок добавления
const Schema = `CREATE TABLE IF NOT EXISTS bookings (
	seq          BIGSERIAL PRIMARY KEY,
	id           TEXT        NOT NULL UNIQUE,
	service_id   TEXT        NOT NULL,
	center_id    TEXT        NOT NULL,
	client_name  TEXT        NOT NULL,
	client_email TEXT        NOT NULL,
	booking_date TEXT        NOT NULL,
	start_time   TEXT        NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookings_center_id ON bookings (center_id);`

var bookingColumns = []string{
	"id",
	"service_id",
	"center_id",
	"client_name",
	"client_email",
	"booking_date",
	"start_time",
	"created_at",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу, если ее еще нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Append добавляет бронирование. Дата и время хранятся как есть, без нормализации
func (r *Repository) Append(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.ServiceID,
			booking.CenterID,
			booking.ClientName,
			booking.ClientEmail,
			booking.Date,
			booking.Time,
			booking.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - booking %s: %v", ErrSave, booking.ID, err)
	}

	return nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.find(ctx, nil)
}

func (r *Repository) ListByCenter(ctx context.Context, centerID string) ([]*domain.Booking, error) {
	return r.find(ctx, squirrel.Eq{"center_id": centerID})
}

func (r *Repository) ListByService(ctx context.Context, serviceID string) ([]*domain.Booking, error) {
	return r.find(ctx, squirrel.Eq{"service_id": serviceID})
}

// Clear удаляет все бронирования
func (r *Repository) Clear(ctx context.Context) error {
	query, args, err := psqlbuilder.Delete("bookings").ToSql()
	if err != nil {
		return fmt.Errorf("%w: Clear - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Clear - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) find(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("seq ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: find - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: find - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.ServiceID,
			&booking.CenterID,
			&booking.ClientName,
			&booking.ClientEmail,
			&booking.Date,
			&booking.Time,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = booking.CreatedAt.UTC()
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
