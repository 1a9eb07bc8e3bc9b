package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/anonimax/anonimax-server/internal/pkg/response"
	"github.com/anonimax/anonimax-server/internal/repository"
)

type CategoryHandler struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryHandler(categoryRepo *repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// List categorias de anúncio
// GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryRepo.List()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{
		"categories": categories,
	})
}
