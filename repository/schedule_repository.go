package repository

import (
	"context"
	"database/sql"

	"schooljournal/models"
)

// ScheduleRepository manages schedule rows
type ScheduleRepository struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListByClass returns the class schedule ordered by day of week, then start
// time. Times come back as ISO time-of-day text, null when unset.
func (r *ScheduleRepository) ListByClass(ctx context.Context, classID int) ([]models.ScheduleEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sc.id, sc.day_of_week, sc.time_start::text, sc.time_end::text,
		       sc.room, s.name AS subject_name
		FROM schedule sc
		JOIN subjects s ON sc.subject_id = s.id
		WHERE sc.class_id = $1
		ORDER BY sc.day_of_week, sc.time_start
	`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.ScheduleEntry{}
	for rows.Next() {
		var (
			e          models.ScheduleEntry
			start, end sql.NullString
			room       sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.DayOfWeek, &start, &end, &room, &e.SubjectName); err != nil {
			return nil, err
		}
		if start.Valid {
			e.TimeStart = &start.String
		}
		if end.Valid {
			e.TimeEnd = &end.String
		}
		e.Room = room.String
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Create inserts a schedule row and returns its id
func (r *ScheduleRepository) Create(ctx context.Context, entry models.CreateScheduleRequest) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO schedule (class_id, subject_id, day_of_week, time_start, time_end, room)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, entry.ClassID, entry.SubjectID, entry.DayOfWeek, entry.TimeStart, entry.TimeEnd, entry.Room).Scan(&id)

	return id, err
}
