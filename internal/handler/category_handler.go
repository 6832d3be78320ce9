package handler

import (
	"errors"
	"net/http"

	"github.com/casinohub/internal/service"
	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Locale      string `json:"locale"`
	Description string `json:"description"`
	Color       string `json:"color"`
	IsFeatured  bool   `json:"is_featured"`
	SortOrder   int    `json:"sort_order"`
	IconID      *uint  `json:"icon_id"`
	Publish     bool   `json:"publish"`
}

// GetCategories 获取分类列表
func (a *API) GetCategories(c *gin.Context) {
	categories, err := a.categories.List(c.Query("locale"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list categories")
		return
	}
	respondData(c, http.StatusOK, categories)
}

// GetCategory 获取单个分类
func (a *API) GetCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := a.categories.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load category")
		return
	}
	respondData(c, http.StatusOK, category)
}

// GetCategoryBySlug 按 slug 获取已发布分类
func (a *API) GetCategoryBySlug(c *gin.Context) {
	category, err := a.categories.GetBySlug(c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load category")
		return
	}
	respondData(c, http.StatusOK, category)
}

// GetFeaturedCategories 获取精选分类
func (a *API) GetFeaturedCategories(c *gin.Context) {
	categories, err := a.categories.ListFeatured(c.Query("locale"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list featured categories")
		return
	}
	respondData(c, http.StatusOK, categories)
}

// GetCategoryStats 获取分类下已发布内容统计
func (a *API) GetCategoryStats(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	stats, err := a.categories.Stats(id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load category stats")
		return
	}
	respondData(c, http.StatusOK, stats)
}

// CreateCategory 创建分类
func (a *API) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req, "category name is required") {
		return
	}

	category, err := a.categories.Create(categoryInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategorySlugExists):
			respondError(c, http.StatusBadRequest, "category slug already exists")
		case errors.Is(err, service.ErrCategorySlugInvalid):
			respondError(c, http.StatusBadRequest, "category slug is not a valid slug")
		case errors.Is(err, service.ErrCategoryName):
			respondError(c, http.StatusBadRequest, "category name is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create category")
		}
		return
	}
	respondData(c, http.StatusCreated, category)
}

// UpdateCategory 更新分类
func (a *API) UpdateCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var req categoryRequest
	if !bindJSON(c, &req, "category name is required") {
		return
	}

	category, err := a.categories.Update(id, categoryInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, http.StatusNotFound, "category not found")
		case errors.Is(err, service.ErrCategoryName):
			respondError(c, http.StatusBadRequest, "category name is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update category")
		}
		return
	}
	respondData(c, http.StatusOK, category)
}

// DeleteCategory 删除分类
func (a *API) DeleteCategory(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := a.categories.Delete(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete category")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

func categoryInput(req categoryRequest) service.CategoryInput {
	return service.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Locale:      req.Locale,
		Description: req.Description,
		Color:       req.Color,
		IsFeatured:  req.IsFeatured,
		SortOrder:   req.SortOrder,
		IconID:      req.IconID,
		Publish:     req.Publish,
	}
}
