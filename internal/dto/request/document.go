package request

type CreateDocumentRequest struct {
	ProjectID string `json:"projectId" validate:"required,uuid"`
	Name      string `json:"name" validate:"required,max=200"`
	Type      string `json:"type" validate:"required,max=50"`
	URL       string `json:"url" validate:"required,url"`
}
