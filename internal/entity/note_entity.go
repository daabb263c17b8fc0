package entity

import "time"

// Note carries no owner column. Its effective owner is the parent
// notebook's owner, resolved through the join in the repository layer.
type Note struct {
	Id         uint
	Content    string
	NotebookId uint
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
}
