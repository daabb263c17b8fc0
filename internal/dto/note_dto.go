package dto

type CreateNoteRequest struct {
	NotebookId uint   `json:"-"`
	Content    string `json:"content"`
}

type UpdateNoteRequest struct {
	Id         uint   `json:"-"`
	NotebookId uint   `json:"-"`
	Content    string `json:"content"`
}

type NoteResponse struct {
	Id      uint   `json:"id"`
	Content string `json:"content"`
}
