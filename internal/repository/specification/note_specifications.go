package specification

import "gorm.io/gorm"

// ByNoteID filters by the note's own id. Qualified with the table name
// so it stays unambiguous next to the ownership join.
type ByNoteID struct {
	ID uint
}

func (s ByNoteID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.id = ?", s.ID)
}

// ByNotebookID filters notes by parent notebook.
type ByNotebookID struct {
	NotebookID uint
}

func (s ByNotebookID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.notebook_id = ?", s.NotebookID)
}

// InNotebookOwnedBy scopes notes through their parent notebook's owner
// in a single joined query. Notes have no owner column of their own, so
// this is the only valid way to authorize a note lookup.
type InNotebookOwnedBy struct {
	NotebookID uint
	UserID     string
}

func (s InNotebookOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN notebooks ON notebooks.id = notes.notebook_id AND notebooks.deleted_at IS NULL").
		Where("notes.notebook_id = ? AND notebooks.user_id = ?", s.NotebookID, s.UserID)
}
