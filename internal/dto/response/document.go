package response

import (
	"time"

	"webuild-dashboard/internal/data/entity"
)

type DocumentResponse struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"projectId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func DocumentToResponse(d *entity.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID.String(),
		ProjectID:  d.ProjectID.String(),
		Name:       d.Name,
		Type:       d.Type,
		URL:        d.URL,
		UploadedBy: d.UploadedBy.String(),
		UploadedAt: d.CreatedAt,
	}
}

func DocumentsToResponse(docs []*entity.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentToResponse(d))
	}
	return out
}
