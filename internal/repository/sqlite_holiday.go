package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/domain"
)

// SQLiteHolidayRepo implements HolidayRepo using a SQLite database.
type SQLiteHolidayRepo struct {
	db db.DBTX
}

// NewSQLiteHolidayRepo creates a new SQLiteHolidayRepo.
func NewSQLiteHolidayRepo(conn db.DBTX) *SQLiteHolidayRepo {
	return &SQLiteHolidayRepo{db: conn}
}

func (r *SQLiteHolidayRepo) Create(ctx context.Context, h *domain.Holiday) error {
	query := `INSERT INTO holidays (id, name, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.Name,
		h.StartDate.Format(dateLayout),
		h.EndDate.Format(dateLayout),
		h.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting holiday: %w", err)
	}
	return nil
}

func (r *SQLiteHolidayRepo) List(ctx context.Context) ([]*domain.Holiday, error) {
	query := `SELECT id, name, start_date, end_date, created_at FROM holidays ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing holidays: %w", err)
	}
	defer rows.Close()

	var holidays []*domain.Holiday
	for rows.Next() {
		var h domain.Holiday
		var startStr, endStr, createdStr string
		if err := rows.Scan(&h.ID, &h.Name, &startStr, &endStr, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning holiday: %w", err)
		}
		if h.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
			return nil, fmt.Errorf("parsing holiday start date: %w", err)
		}
		if h.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
			return nil, fmt.Errorf("parsing holiday end date: %w", err)
		}
		if h.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing holiday created_at: %w", err)
		}
		holidays = append(holidays, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating holidays: %w", err)
	}
	return holidays, nil
}

func (r *SQLiteHolidayRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting holiday: %w", err)
	}
	return nil
}
