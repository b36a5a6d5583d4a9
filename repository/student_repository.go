package repository

import (
	"context"
	"database/sql"

	"schooljournal/models"
)

// StudentRepository manages student accounts and their class enrollments
type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every user with the student role
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, first_name, last_name
		FROM users
		WHERE role = 'student'
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ListByClass returns the students enrolled in the given class
func (r *StudentRepository) ListByClass(ctx context.Context, classID int) ([]models.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.email, u.first_name, u.last_name
		FROM users u
		JOIN class_students cs ON u.id = cs.student_id
		WHERE cs.class_id = $1 AND u.role = 'student'
	`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

func scanStudents(rows *sql.Rows) ([]models.Student, error) {
	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Email, &s.FirstName, &s.LastName); err != nil {
			return nil, err
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

// Create inserts a user row with the student role and, when a class is given,
// an enrollment row. The two inserts are issued as separate statements; a
// fault between them leaves the created user without its enrollment.
func (r *StudentRepository) Create(ctx context.Context, student models.CreateStudentRequest) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password, role, first_name, last_name)
		VALUES ($1, $2, 'student', $3, $4)
		RETURNING id
	`, student.Email, student.Password, student.FirstName, student.LastName).Scan(&id)
	if err != nil {
		return 0, err
	}

	if student.ClassID != nil {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO class_students (class_id, student_id)
			VALUES ($1, $2)
		`, *student.ClassID, id)
		if err != nil {
			return 0, err
		}
	}

	return id, nil
}

// Enroll adds the student to the class. Re-enrolling an already enrolled
// student is a no-op.
func (r *StudentRepository) Enroll(ctx context.Context, classID, studentID int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO class_students (class_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (class_id, student_id) DO NOTHING
	`, classID, studentID)

	return err
}

// SoftDelete marks the user deleted by overwriting its role, preserving
// grade and enrollment history
func (r *StudentRepository) SoftDelete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET role = 'deleted' WHERE id = $1`, id)
	return err
}
