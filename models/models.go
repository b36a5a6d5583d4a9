package models

// LoginRequest for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// User is the profile returned on successful login
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Class is one item of the class listing. Teacher fields are null when the
// class has no teacher or the teacher row was removed.
type Class struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	TeacherID        *int    `json:"teacherId"`
	TeacherFirstName *string `json:"teacherFirstName"`
	TeacherLastName  *string `json:"teacherLastName"`
	StudentCount     int     `json:"studentCount"`
}

// CreateClassRequest for creating a class
type CreateClassRequest struct {
	Name      string `json:"name" binding:"required"`
	TeacherID *int   `json:"teacherId"`
}

// Student is one item of the student listing
type Student struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateStudentRequest for creating a student, optionally enrolling into a class
type CreateStudentRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	ClassID   *int   `json:"classId"`
}

// EnrollRequest for adding an existing student to a class
type EnrollRequest struct {
	ClassID   int `json:"classId" binding:"required"`
	StudentID int `json:"studentId" binding:"required"`
}

// Grade is one item of the per-student grade listing
type Grade struct {
	ID          int     `json:"id"`
	Grade       int     `json:"grade"`
	Date        *string `json:"date"`
	Comment     string  `json:"comment"`
	SubjectName string  `json:"subjectName"`
}

// GradeWithStudent is one item of the system-wide grade listing
type GradeWithStudent struct {
	Grade
	StudentName string `json:"studentName"`
}

// CreateGradeRequest for adding a grade entry
type CreateGradeRequest struct {
	StudentID int    `json:"studentId" binding:"required"`
	SubjectID int    `json:"subjectId" binding:"required"`
	Grade     int    `json:"grade" binding:"required"`
	Date      string `json:"date"`
	Comment   string `json:"comment"`
}

// ScheduleEntry is one item of the class schedule listing
type ScheduleEntry struct {
	ID          int     `json:"id"`
	DayOfWeek   int     `json:"dayOfWeek"`
	TimeStart   *string `json:"timeStart"`
	TimeEnd     *string `json:"timeEnd"`
	Room        string  `json:"room"`
	SubjectName string  `json:"subjectName"`
}

// CreateScheduleRequest for adding a schedule entry
type CreateScheduleRequest struct {
	ClassID   int    `json:"classId" binding:"required"`
	SubjectID int    `json:"subjectId" binding:"required"`
	DayOfWeek int    `json:"dayOfWeek" binding:"required"`
	TimeStart string `json:"timeStart" binding:"required"`
	TimeEnd   string `json:"timeEnd" binding:"required"`
	Room      string `json:"room"`
}
