package dto

type CreateNotebookRequest struct {
	Title string `json:"title"`
}

type UpdateNotebookRequest struct {
	Id    uint   `json:"-"`
	Title string `json:"title"`
}

type NotebookResponse struct {
	Id    uint   `json:"id"`
	Title string `json:"title"`
	Notes int64  `json:"notes"`
}
