package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/domain"
)

// SQLitePhaseRepo implements PhaseRepo using a SQLite database. The
// recurrence config flattens into recur_* columns; a NULL recur_type
// marks a non-recurring phase.
type SQLitePhaseRepo struct {
	db db.DBTX
}

// NewSQLitePhaseRepo creates a new SQLitePhaseRepo.
func NewSQLitePhaseRepo(conn db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: conn}
}

const phaseColumns = `id, project_id, name, start_date, end_date, allocation_hours,
	recur_type, recur_interval, recur_weekday, recur_monthly_pattern,
	recur_day_of_month, recur_week_of_month, recur_monthly_weekday,
	created_at, updated_at`

func (r *SQLitePhaseRepo) Create(ctx context.Context, ph *domain.Phase) error {
	query := `INSERT INTO phases (` + phaseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{
		ph.ID,
		ph.ProjectID,
		ph.Name,
		nullableTimeToString(ph.StartDate, dateLayout),
		ph.EndDate.Format(dateLayout),
		ph.AllocationHours,
	}
	args = append(args, recurringArgs(ph.Recurring)...)
	args = append(args,
		ph.CreatedAt.Format(time.RFC3339),
		ph.UpdatedAt.Format(time.RFC3339),
	)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	query := `SELECT ` + phaseColumns + ` FROM phases WHERE id = ?`
	ph, err := scanPhaseRow(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("phase not found")
	}
	return ph, err
}

func (r *SQLitePhaseRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Phase, error) {
	query := `SELECT ` + phaseColumns + ` FROM phases WHERE project_id = ? ORDER BY end_date, id`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing phases: %w", err)
	}
	defer rows.Close()

	var phases []*domain.Phase
	for rows.Next() {
		ph, err := scanPhaseRow(rows)
		if err != nil {
			return nil, err
		}
		phases = append(phases, ph)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return phases, nil
}

func (r *SQLitePhaseRepo) Update(ctx context.Context, ph *domain.Phase) error {
	query := `UPDATE phases SET name = ?, start_date = ?, end_date = ?, allocation_hours = ?,
		recur_type = ?, recur_interval = ?, recur_weekday = ?, recur_monthly_pattern = ?,
		recur_day_of_month = ?, recur_week_of_month = ?, recur_monthly_weekday = ?,
		updated_at = ?
		WHERE id = ?`
	args := []any{
		ph.Name,
		nullableTimeToString(ph.StartDate, dateLayout),
		ph.EndDate.Format(dateLayout),
		ph.AllocationHours,
	}
	args = append(args, recurringArgs(ph.Recurring)...)
	args = append(args, ph.UpdatedAt.Format(time.RFC3339), ph.ID)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return nil
}

// recurringArgs flattens a RecurringConfig into the recur_* column
// values, NULL type for non-recurring phases.
func recurringArgs(cfg *domain.RecurringConfig) []any {
	if cfg == nil {
		return []any{nil, 1, 0, "", 0, 0, 0}
	}
	return []any{
		string(cfg.Type),
		cfg.Interval,
		int(cfg.Weekday),
		string(cfg.MonthlyPattern),
		cfg.DayOfMonth,
		cfg.WeekOfMonth,
		int(cfg.MonthlyWeekday),
	}
}

func scanPhaseRow(row rowScanner) (*domain.Phase, error) {
	var ph domain.Phase
	var startDateStr, recurTypeStr sql.NullString
	var endDateStr, monthlyPattern, createdAtStr, updatedAtStr string
	var interval, weekday, dayOfMonth, weekOfMonth, monthlyWeekday int

	err := row.Scan(
		&ph.ID, &ph.ProjectID, &ph.Name,
		&startDateStr, &endDateStr, &ph.AllocationHours,
		&recurTypeStr, &interval, &weekday, &monthlyPattern,
		&dayOfMonth, &weekOfMonth, &monthlyWeekday,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning phase: %w", err)
	}

	ph.StartDate = parseNullableTime(startDateStr, dateLayout)
	if ph.EndDate, err = time.Parse(dateLayout, endDateStr); err != nil {
		return nil, fmt.Errorf("parsing phase end date: %w", err)
	}

	if recurTypeStr.Valid && recurTypeStr.String != "" {
		ph.Recurring = &domain.RecurringConfig{
			Type:           domain.RecurrenceType(recurTypeStr.String),
			Interval:       interval,
			Weekday:        time.Weekday(weekday),
			MonthlyPattern: domain.MonthlyPattern(monthlyPattern),
			DayOfMonth:     dayOfMonth,
			WeekOfMonth:    weekOfMonth,
			MonthlyWeekday: time.Weekday(monthlyWeekday),
		}
	}

	if ph.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing phase created_at: %w", err)
	}
	if ph.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing phase updated_at: %w", err)
	}
	return &ph, nil
}
