package entity

import "time"

// Notebook is owned by exactly one user. The owner is set at creation
// and never changes.
type Notebook struct {
	Id        uint
	Title     string
	UserId    string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
