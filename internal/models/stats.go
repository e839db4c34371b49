package models

// StudentStats summarises one student's doubts.
type StudentStats struct {
	Total    int `db:"total" json:"total"`
	Pending  int `db:"pending" json:"pending"`
	Resolved int `db:"resolved" json:"resolved"`
}

// StatusCounts holds the global doubt counts per lifecycle stage.
type StatusCounts struct {
	Pending    int `db:"pending" json:"pending"`
	InProgress int `db:"in_progress" json:"in_progress"`
	Resolved   int `db:"resolved" json:"resolved"`
}

// TeacherStats combines the global status counts with the requesting
// teacher's own response tally.
type TeacherStats struct {
	Pending     int `json:"pending"`
	InProgress  int `json:"in_progress"`
	Resolved    int `json:"resolved"`
	MyResponses int `json:"my_responses"`
}

// AdminStats is the aggregate dashboard payload.
type AdminStats struct {
	Students      int `json:"students"`
	Teachers      int `json:"teachers"`
	TotalDoubts   int `json:"total_doubts"`
	Resolved      int `json:"resolved"`
	Pending       int `json:"pending"`
	ResolutionPct int `json:"resolution_pct"`
}
