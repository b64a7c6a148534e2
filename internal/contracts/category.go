package contracts

import "github.com/EduardoCSampaio/financas-app/internal/domain/category"

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CategoryUpdateRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CategoryCreateResponse struct {
	Message  string             `json:"message"`
	Category *category.Category `json:"category"`
}

type CategoryListResponse struct {
	Categories []*category.Category `json:"categories"`
	Total      int                  `json:"total"`
}
