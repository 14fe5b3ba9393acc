package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
// Pass a transaction-backed DBTX to make ReplaceDay atomic with other
// writes.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) Get(ctx context.Context) (domain.WeeklySchedule, error) {
	query := `SELECT weekday, start_time, end_time FROM schedule_slots ORDER BY weekday, start_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule)
	for rows.Next() {
		var weekday int
		var slot domain.WorkSlot
		if err := rows.Scan(&weekday, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, fmt.Errorf("scanning schedule slot: %w", err)
		}
		day := time.Weekday(weekday)
		schedule[day] = append(schedule[day], slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule slots: %w", err)
	}
	return schedule, nil
}

func (r *SQLiteScheduleRepo) ReplaceDay(ctx context.Context, weekday time.Weekday, slots []domain.WorkSlot) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_slots WHERE weekday = ?`, int(weekday)); err != nil {
		return fmt.Errorf("clearing schedule slots: %w", err)
	}
	for _, slot := range slots {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO schedule_slots (id, weekday, start_time, end_time) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), int(weekday), slot.StartTime, slot.EndTime)
		if err != nil {
			return fmt.Errorf("inserting schedule slot: %w", err)
		}
	}
	return nil
}
