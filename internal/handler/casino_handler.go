package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/casinohub/internal/service"
	"github.com/gin-gonic/gin"
)

type casinoRequest struct {
	Name           string  `json:"name" binding:"required"`
	Slug           string  `json:"slug"`
	Locale         string  `json:"locale"`
	Rating         float64 `json:"rating"`
	BonusText      string  `json:"bonus_text"`
	License        string  `json:"license"`
	Pros           string  `json:"pros"`
	Cons           string  `json:"cons"`
	DetailedReview string  `json:"detailed_review"`
	LogoID         *uint   `json:"logo_id"`
	Publish        bool    `json:"publish"`
}

// GetCasinos 获取娱乐场评测列表
func (a *API) GetCasinos(c *gin.Context) {
	locale, page, pageSize := listParams(c)
	result, err := a.casinos.List(service.CasinoFilter{
		Locale:   locale,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list casino reviews")
		return
	}
	respondList(c, result.Casinos, result.Page, result.PageSize, result.Total)
}

// GetCasino 获取单个评测
func (a *API) GetCasino(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid casino id")
		return
	}

	casino, err := a.casinos.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCasinoNotFound) {
			respondError(c, http.StatusNotFound, "casino review not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load casino review")
		return
	}
	respondData(c, http.StatusOK, casino)
}

// GetCasinoBySlug 按 slug 获取已发布评测
func (a *API) GetCasinoBySlug(c *gin.Context) {
	casino, err := a.casinos.GetBySlug(c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrCasinoNotFound) {
			respondError(c, http.StatusNotFound, "casino review not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load casino review")
		return
	}
	respondData(c, http.StatusOK, casino)
}

// GetTopRatedCasinos 获取评分不低于 8 的评测
func (a *API) GetTopRatedCasinos(c *gin.Context) {
	casinos, err := a.casinos.ListTopRated(c.Query("locale"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list top rated casinos")
		return
	}
	respondData(c, http.StatusOK, casinos)
}

// GetCasinosByLicense 按牌照关键字筛选评测
func (a *API) GetCasinosByLicense(c *gin.Context) {
	license := strings.TrimSpace(c.Param("license"))
	if license == "" {
		respondError(c, http.StatusBadRequest, "license is required")
		return
	}

	casinos, err := a.casinos.ListByLicense(license, c.Query("locale"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list casinos by license")
		return
	}
	respondData(c, http.StatusOK, casinos)
}

// CreateCasino 创建评测
func (a *API) CreateCasino(c *gin.Context) {
	var req casinoRequest
	if !bindJSON(c, &req, "casino name is required") {
		return
	}

	casino, err := a.casinos.Create(casinoInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCasinoSlugExists):
			respondError(c, http.StatusBadRequest, "casino slug already exists")
		case errors.Is(err, service.ErrCasinoSlugInvalid):
			respondError(c, http.StatusBadRequest, "casino slug is not a valid slug")
		case errors.Is(err, service.ErrCasinoName):
			respondError(c, http.StatusBadRequest, "casino name is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create casino review")
		}
		return
	}
	respondData(c, http.StatusCreated, casino)
}

// UpdateCasino 更新评测
func (a *API) UpdateCasino(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid casino id")
		return
	}

	var req casinoRequest
	if !bindJSON(c, &req, "casino name is required") {
		return
	}

	casino, err := a.casinos.Update(id, casinoInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCasinoNotFound):
			respondError(c, http.StatusNotFound, "casino review not found")
		case errors.Is(err, service.ErrCasinoName):
			respondError(c, http.StatusBadRequest, "casino name is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update casino review")
		}
		return
	}
	respondData(c, http.StatusOK, casino)
}

// DeleteCasino 删除评测
func (a *API) DeleteCasino(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid casino id")
		return
	}

	if err := a.casinos.Delete(id); err != nil {
		if errors.Is(err, service.ErrCasinoNotFound) {
			respondError(c, http.StatusNotFound, "casino review not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete casino review")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

func casinoInput(req casinoRequest) service.CasinoInput {
	return service.CasinoInput{
		Name:           req.Name,
		Slug:           req.Slug,
		Locale:         req.Locale,
		Rating:         req.Rating,
		BonusText:      req.BonusText,
		License:        req.License,
		Pros:           req.Pros,
		Cons:           req.Cons,
		DetailedReview: req.DetailedReview,
		LogoID:         req.LogoID,
		Publish:        req.Publish,
	}
}
