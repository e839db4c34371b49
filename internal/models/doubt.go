package models

import "time"

// DoubtStatus is the lifecycle stage of a doubt.
type DoubtStatus string

const (
	StatusPending    DoubtStatus = "Pending"
	StatusInProgress DoubtStatus = "In Progress"
	StatusResolved   DoubtStatus = "Resolved"

	// StatusFilterAll disables status filtering on list endpoints.
	StatusFilterAll = "All"
)

// Valid reports whether the status is one of the known lifecycle stages.
func (s DoubtStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Doubt is a student-submitted question awaiting or having received a
// teacher response.
type Doubt struct {
	ID        int64       `db:"doubt_id" json:"doubt_id"`
	StudentID int64       `db:"student_id" json:"student_id"`
	Subject   string      `db:"subject" json:"subject"`
	DoubtText string      `db:"doubt_text" json:"doubt_text"`
	Status    DoubtStatus `db:"status" json:"status"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// DoubtWithStudent joins a doubt with the owning student's display name.
type DoubtWithStudent struct {
	Doubt
	StudentName string `db:"student_name" json:"student_name"`
}

// Response is a teacher's answer to a specific doubt. Immutable once created.
type Response struct {
	ID           int64     `db:"response_id" json:"response_id"`
	DoubtID      int64     `db:"doubt_id" json:"doubt_id"`
	TeacherID    int64     `db:"teacher_id" json:"teacher_id"`
	ResponseText string    `db:"response_text" json:"response_text"`
	ResponseDate time.Time `db:"response_date" json:"response_date"`
}

// ResponseWithTeacher joins a response with the responding teacher's name.
type ResponseWithTeacher struct {
	Response
	TeacherName string `db:"teacher_name" json:"teacher_name"`
}

// DoubtDetails bundles a doubt with its responses, newest first.
type DoubtDetails struct {
	Doubt     DoubtWithStudent      `json:"doubt"`
	Responses []ResponseWithTeacher `json:"responses"`
}
