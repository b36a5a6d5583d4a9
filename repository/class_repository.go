package repository

import (
	"context"
	"database/sql"

	"schooljournal/models"
)

// ClassRepository manages class rows
type ClassRepository struct {
	db *sql.DB
}

func NewClassRepository(db *sql.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// List returns every class, or only the classes owned by the given teacher.
// Teacher names come from a left join and stay null for ownerless classes;
// studentCount is the number of enrollment rows referencing the class.
func (r *ClassRepository) List(ctx context.Context, teacherID *int) ([]models.Class, error) {
	query := `
		SELECT c.id, c.name, c.teacher_id, u.first_name, u.last_name,
		       (SELECT COUNT(*) FROM class_students cs WHERE cs.class_id = c.id) AS student_count
		FROM classes c
		LEFT JOIN users u ON c.teacher_id = u.id`

	var (
		rows *sql.Rows
		err  error
	)
	if teacherID != nil {
		rows, err = r.db.QueryContext(ctx, query+` WHERE c.teacher_id = $1`, *teacherID)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []models.Class{}
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.TeacherID, &c.TeacherFirstName, &c.TeacherLastName, &c.StudentCount); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}

	return classes, rows.Err()
}

// Create inserts a class row and returns its id
func (r *ClassRepository) Create(ctx context.Context, name string, teacherID *int) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO classes (name, teacher_id)
		VALUES ($1, $2)
		RETURNING id
	`, name, teacherID).Scan(&id)

	return id, err
}

// Delete removes the class row unconditionally. Enrollment rows referencing
// the class are left in place.
func (r *ClassRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}
