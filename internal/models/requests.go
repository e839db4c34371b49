package models

// LoginRequest carries credentials plus the portal the user logged in from.
// Role "student" authenticates against students; anything else against teachers.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// LoginResult is the identity returned on a successful login.
type LoginResult struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

// RegisterRequest is the student self-registration payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SubmitDoubtRequest creates a new doubt for a student.
type SubmitDoubtRequest struct {
	StudentID int64  `json:"student_id" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	DoubtText string `json:"doubt_text" validate:"required"`
}

// RespondRequest records a teacher response and moves the doubt's status.
// Status defaults to Resolved when unspecified.
type RespondRequest struct {
	DoubtID      int64       `json:"doubt_id" validate:"required"`
	TeacherID    int64       `json:"teacher_id" validate:"required"`
	ResponseText string      `json:"response_text" validate:"required"`
	Status       DoubtStatus `json:"status"`
}

// AddTeacherRequest creates a non-admin teacher account.
type AddTeacherRequest struct {
	Name     string `json:"name" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DeleteTeacherRequest targets a teacher account for removal.
type DeleteTeacherRequest struct {
	TeacherID int64 `json:"teacher_id" validate:"required"`
}
