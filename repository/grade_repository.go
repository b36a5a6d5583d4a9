package repository

import (
	"context"
	"database/sql"

	"schooljournal/models"
)

// GradeRepository manages grade rows
type GradeRepository struct {
	db *sql.DB
}

func NewGradeRepository(db *sql.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// ListByStudent returns the student's grades ordered most recent first
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int) ([]models.Grade, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.grade, g.date, g.comment, s.name AS subject_name
		FROM grades g
		JOIN subjects s ON g.subject_id = s.id
		WHERE g.student_id = $1
		ORDER BY g.date DESC
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := []models.Grade{}
	for rows.Next() {
		var (
			g       models.Grade
			date    sql.NullTime
			comment sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Grade, &date, &comment, &g.SubjectName); err != nil {
			return nil, err
		}
		g.Date = formatDate(date)
		g.Comment = comment.String
		grades = append(grades, g)
	}

	return grades, rows.Err()
}

// AverageForStudent returns the arithmetic mean of the student's grade
// values rounded to two decimal places, or 0 when there are none
func (r *GradeRepository) AverageForStudent(ctx context.Context, studentID int) (float64, error) {
	var avg float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(ROUND(AVG(grade)::numeric, 2), 0)
		FROM grades
		WHERE student_id = $1
	`, studentID).Scan(&avg)

	return avg, err
}

// ListAll returns every grade system-wide with the student's full name,
// ordered most recent first
func (r *GradeRepository) ListAll(ctx context.Context) ([]models.GradeWithStudent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.grade, g.date, g.comment, s.name AS subject_name,
		       u.first_name || ' ' || u.last_name AS student_name
		FROM grades g
		JOIN subjects s ON g.subject_id = s.id
		JOIN users u ON g.student_id = u.id
		ORDER BY g.date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := []models.GradeWithStudent{}
	for rows.Next() {
		var (
			g       models.GradeWithStudent
			date    sql.NullTime
			comment sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Grade.Grade, &date, &comment, &g.SubjectName, &g.StudentName); err != nil {
			return nil, err
		}
		g.Date = formatDate(date)
		g.Comment = comment.String
		grades = append(grades, g)
	}

	return grades, rows.Err()
}

// Create inserts a grade row and returns its id
func (r *GradeRepository) Create(ctx context.Context, entry models.CreateGradeRequest) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO grades (student_id, subject_id, grade, date, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, entry.StudentID, entry.SubjectID, entry.Grade, entry.Date, entry.Comment).Scan(&id)

	return id, err
}

func formatDate(date sql.NullTime) *string {
	if !date.Valid {
		return nil
	}
	formatted := date.Time.Format("2006-01-02")
	return &formatted
}
