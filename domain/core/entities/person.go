package entities

import (
	pkgerrors "hiretrack-backend/pkg/errors"
)

// Status represents where a person currently sits in the hiring pipeline
type Status string

const (
	StatusTodo      Status = "To do"
	StatusInterview Status = "Interview"
	StatusCEO       Status = "CEO"
	StatusRejected  Status = "Rejected"
)

// AllStatuses lists every valid pipeline status in display order
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInterview, StatusCEO, StatusRejected}
}

// IsValid reports whether the status is one of the known pipeline stages
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInterview, StatusCEO, StatusRejected:
		return true
	}
	return false
}

// Person is a tracked hiring candidate or contact record.
// Fields are exported with JSON tags because the persisted document and the
// SPA wire format are the same flat shape; there is no separate storage model.
type Person struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Starred bool   `json:"starred"`
	// Team is a free-form grouping name; empty means no team.
	Team  string `json:"team"`
	Notes string `json:"notes"`

	// X and Y hold the last manually dragged display position. They are
	// persisted so placement survives reloads, and absent until the user
	// drags the node for the first time.
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

// Validate checks the invariants a person record must hold before it enters
// the document
func (p Person) Validate() error {
	if p.ID == "" {
		return pkgerrors.NewValidationError("person id cannot be empty")
	}
	if p.Name == "" {
		return pkgerrors.NewValidationError("person name cannot be empty")
	}
	if !p.Status.IsValid() {
		return pkgerrors.NewValidationError("unknown status: " + string(p.Status))
	}
	return nil
}

// HasStoredPosition reports whether the person carries a manually placed
// display coordinate
func (p Person) HasStoredPosition() bool {
	return p.X != nil && p.Y != nil
}

// SetPosition records a manual display position
func (p *Person) SetPosition(x, y float64) {
	p.X = &x
	p.Y = &y
}
