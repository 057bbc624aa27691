package models

// Store backend constants
const (
	StoreJSON     = "json"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Domain types

type Participant struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	HasPicked  bool   `json:"hasPicked"`
	AssignedTo *int   `json:"assignedTo"`
}

// Assigned reports whether the participant already holds an angelito.
func (p Participant) Assigned() bool {
	return p.AssignedTo != nil
}

// Request types

type DrawRequest struct {
	Code string `json:"code"`
}

// Response types

type DrawResponse struct {
	Success      bool   `json:"success"`
	AngelitoName string `json:"angelitoName"`
}

// angelito is the assignee's name, null while unassigned
type AdminEntry struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	HasPicked bool    `json:"hasPicked"`
	Angelito  *string `json:"angelito"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
