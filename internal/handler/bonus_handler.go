package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/casinohub/internal/service"
	"github.com/gin-gonic/gin"
)

type bonusRequest struct {
	Name                 string     `json:"name" binding:"required"`
	Slug                 string     `json:"slug"`
	Locale               string     `json:"locale"`
	BonusType            string     `json:"bonus_type" binding:"required"`
	BonusAmount          string     `json:"bonus_amount"`
	PromoCode            string     `json:"promo_code"`
	WageringRequirements string     `json:"wagering_requirements"`
	ValidUntil           *time.Time `json:"valid_until"`
	CasinoID             *uint      `json:"casino_id"`
	Publish              bool       `json:"publish"`
}

// GetBonuses 获取有效红利列表
func (a *API) GetBonuses(c *gin.Context) {
	locale, page, pageSize := listParams(c)
	result, err := a.bonuses.List(service.BonusFilter{
		Locale:   locale,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list bonuses")
		return
	}
	respondList(c, result.Bonuses, result.Page, result.PageSize, result.Total)
}

// GetBonus 获取单个红利
func (a *API) GetBonus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid bonus id")
		return
	}

	bonus, err := a.bonuses.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBonusNotFound) {
			respondError(c, http.StatusNotFound, "bonus not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load bonus")
		return
	}
	respondData(c, http.StatusOK, bonus)
}

// GetBonusBySlug 按 slug 获取已发布红利
func (a *API) GetBonusBySlug(c *gin.Context) {
	bonus, err := a.bonuses.GetBySlug(c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrBonusNotFound) {
			respondError(c, http.StatusNotFound, "bonus not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load bonus")
		return
	}
	respondData(c, http.StatusOK, bonus)
}

// GetBonusesByType 按类型获取红利，未知类型返回 400
func (a *API) GetBonusesByType(c *gin.Context) {
	bonuses, err := a.bonuses.ListByType(c.Param("type"), c.Query("locale"), limitParam(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidBonusType) {
			respondError(c, http.StatusBadRequest, "invalid bonus type")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to list bonuses by type")
		return
	}
	respondData(c, http.StatusOK, bonuses)
}

// GetFeaturedBonuses 获取最新有效红利
func (a *API) GetFeaturedBonuses(c *gin.Context) {
	bonuses, err := a.bonuses.ListFeatured(c.Query("locale"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list featured bonuses")
		return
	}
	respondData(c, http.StatusOK, bonuses)
}

// GetBonusesByCasino 获取指定娱乐场的红利
func (a *API) GetBonusesByCasino(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid casino id")
		return
	}

	bonuses, err := a.bonuses.ListByCasino(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list casino bonuses")
		return
	}
	respondData(c, http.StatusOK, bonuses)
}

// CreateBonus 创建红利
func (a *API) CreateBonus(c *gin.Context) {
	var req bonusRequest
	if !bindJSON(c, &req, "bonus name and type are required") {
		return
	}

	bonus, err := a.bonuses.Create(bonusInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBonusSlugExists):
			respondError(c, http.StatusBadRequest, "bonus slug already exists")
		case errors.Is(err, service.ErrBonusSlugInvalid):
			respondError(c, http.StatusBadRequest, "bonus slug is not a valid slug")
		case errors.Is(err, service.ErrInvalidBonusType):
			respondError(c, http.StatusBadRequest, "invalid bonus type")
		case errors.Is(err, service.ErrBonusName):
			respondError(c, http.StatusBadRequest, "bonus name is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create bonus")
		}
		return
	}
	respondData(c, http.StatusCreated, bonus)
}

// UpdateBonus 更新红利
func (a *API) UpdateBonus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid bonus id")
		return
	}

	var req bonusRequest
	if !bindJSON(c, &req, "bonus name and type are required") {
		return
	}

	bonus, err := a.bonuses.Update(id, bonusInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBonusNotFound):
			respondError(c, http.StatusNotFound, "bonus not found")
		case errors.Is(err, service.ErrInvalidBonusType):
			respondError(c, http.StatusBadRequest, "invalid bonus type")
		case errors.Is(err, service.ErrBonusName):
			respondError(c, http.StatusBadRequest, "bonus name is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update bonus")
		}
		return
	}
	respondData(c, http.StatusOK, bonus)
}

// DeleteBonus 删除红利
func (a *API) DeleteBonus(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid bonus id")
		return
	}

	if err := a.bonuses.Delete(id); err != nil {
		if errors.Is(err, service.ErrBonusNotFound) {
			respondError(c, http.StatusNotFound, "bonus not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete bonus")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

func bonusInput(req bonusRequest) service.BonusInput {
	return service.BonusInput{
		Name:                 req.Name,
		Slug:                 req.Slug,
		Locale:               req.Locale,
		BonusType:            req.BonusType,
		BonusAmount:          req.BonusAmount,
		PromoCode:            req.PromoCode,
		WageringRequirements: req.WageringRequirements,
		ValidUntil:           req.ValidUntil,
		CasinoID:             req.CasinoID,
		Publish:              req.Publish,
	}
}
