package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/facetrack-hrm/attendance-backend-go/internal/domain/holiday"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

const holidayColumns = `
	id, name, start_date, end_date, type, category, leave_type, salary_policy,
	salary_multiplier, allow_work, description, is_active, applies_to,
	created_at, updated_at`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID, &h.Name, &h.StartDate, &h.EndDate, &h.Type, &h.Category,
		&h.LeaveType, &h.SalaryPolicy, &h.SalaryMultiplier, &h.AllowWork,
		&h.Description, &h.IsActive, &h.AppliesTo, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h.ID = uuid.NewString()

	query := `
		INSERT INTO holidays (
			id, name, start_date, end_date, type, category, leave_type,
			salary_policy, salary_multiplier, allow_work, description,
			is_active, applies_to
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		h.ID, h.Name, h.StartDate, h.EndDate, h.Type, h.Category, h.LeaveType,
		h.SalaryPolicy, h.SalaryMultiplier, h.AllowWork, h.Description,
		h.IsActive, h.AppliesTo,
	).Scan(&h.CreatedAt, &h.UpdatedAt)

	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// GetByID implements holiday.HolidayRepository.
func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE id = $1`

	h, err := scanHoliday(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}

	return h, nil
}

// Update implements holiday.HolidayRepository.
func (r *holidayRepository) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holidays
		SET name = $2, start_date = $3, end_date = $4, type = $5, category = $6,
			leave_type = $7, salary_policy = $8, salary_multiplier = $9,
			allow_work = $10, description = $11, is_active = $12,
			applies_to = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		h.ID, h.Name, h.StartDate, h.EndDate, h.Type, h.Category, h.LeaveType,
		h.SalaryPolicy, h.SalaryMultiplier, h.AllowWork, h.Description,
		h.IsActive, h.AppliesTo,
	).Scan(&h.CreatedAt, &h.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return h, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays ORDER BY start_date`
	return r.list(ctx, query)
}

// ListOverlapping implements holiday.HolidayRepository.
// COALESCE treats a single-day holiday as ending on its start date. Active
// status and role scope are deliberately not filtered; any date intersection
// counts as a conflict.
func (r *holidayRepository) ListOverlapping(ctx context.Context, start, end time.Time, excludeID *string) ([]holiday.Holiday, error) {
	query := `SELECT ` + holidayColumns + `
		FROM holidays
		WHERE start_date <= $2 AND COALESCE(end_date, start_date) >= $1
		  AND ($3::text IS NULL OR id != $3)
		ORDER BY start_date`
	return r.list(ctx, query, holiday.CivilDate(start), holiday.CivilDate(end), excludeID)
}

// ListInRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	query := `SELECT ` + holidayColumns + `
		FROM holidays
		WHERE is_active
		  AND start_date <= $2 AND COALESCE(end_date, start_date) >= $1
		ORDER BY start_date`
	return r.list(ctx, query, holiday.CivilDate(start), holiday.CivilDate(end))
}

// ListByYear implements holiday.HolidayRepository.
func (r *holidayRepository) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	query := `SELECT ` + holidayColumns + `
		FROM holidays
		WHERE start_date <= $2 AND COALESCE(end_date, start_date) >= $1
		ORDER BY start_date`
	return r.list(ctx, query, start, end)
}

func (r *holidayRepository) list(ctx context.Context, query string, args ...interface{}) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}
