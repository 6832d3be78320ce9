package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/casinohub/internal/service"
	"github.com/gin-gonic/gin"
)

type slotRequest struct {
	Name         string     `json:"name" binding:"required"`
	Slug         string     `json:"slug"`
	Locale       string     `json:"locale"`
	Provider     string     `json:"provider"`
	Rating       float64    `json:"rating"`
	RTP          float64    `json:"rtp"`
	Volatility   string     `json:"volatility"`
	MinBet       float64    `json:"min_bet"`
	MaxBet       float64    `json:"max_bet"`
	IsPopular    bool       `json:"is_popular"`
	ReleaseDate  *time.Time `json:"release_date"`
	CategoryID   *uint      `json:"category_id"`
	CoverImageID *uint      `json:"cover_image_id"`
	Publish      bool       `json:"publish"`
}

// GetSlots 获取老虎机列表
func (a *API) GetSlots(c *gin.Context) {
	locale, page, pageSize := listParams(c)
	result, err := a.slots.List(service.SlotFilter{
		Locale:   locale,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list slots")
		return
	}
	respondList(c, result.Slots, result.Page, result.PageSize, result.Total)
}

// GetSlot 获取单个老虎机
func (a *API) GetSlot(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid slot id")
		return
	}

	slot, err := a.slots.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrSlotNotFound) {
			respondError(c, http.StatusNotFound, "slot not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load slot")
		return
	}
	respondData(c, http.StatusOK, slot)
}

// GetSlotBySlug 按 slug 获取已发布老虎机
func (a *API) GetSlotBySlug(c *gin.Context) {
	slot, err := a.slots.GetBySlug(c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrSlotNotFound) {
			respondError(c, http.StatusNotFound, "slot not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load slot")
		return
	}
	respondData(c, http.StatusOK, slot)
}

// GetPopularSlots 获取热门老虎机
func (a *API) GetPopularSlots(c *gin.Context) {
	slots, err := a.slots.ListPopular(c.Query("locale"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list popular slots")
		return
	}
	respondData(c, http.StatusOK, slots)
}

// GetSlotsByProvider 按供应商筛选老虎机
func (a *API) GetSlotsByProvider(c *gin.Context) {
	provider := strings.TrimSpace(c.Param("provider"))
	if provider == "" {
		respondError(c, http.StatusBadRequest, "provider is required")
		return
	}

	slots, err := a.slots.ListByProvider(provider, c.Query("locale"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list slots by provider")
		return
	}
	respondData(c, http.StatusOK, slots)
}

// GetHighRTPSlots 获取 RTP 不低于 96 的老虎机
func (a *API) GetHighRTPSlots(c *gin.Context) {
	slots, err := a.slots.ListHighRTP(c.Query("locale"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list high rtp slots")
		return
	}
	respondData(c, http.StatusOK, slots)
}

// CreateSlot 创建老虎机
func (a *API) CreateSlot(c *gin.Context) {
	var req slotRequest
	if !bindJSON(c, &req, "slot name is required") {
		return
	}

	slot, err := a.slots.Create(slotInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotSlugExists):
			respondError(c, http.StatusBadRequest, "slot slug already exists")
		case errors.Is(err, service.ErrSlotSlugInvalid):
			respondError(c, http.StatusBadRequest, "slot slug is not a valid slug")
		case errors.Is(err, service.ErrSlotName):
			respondError(c, http.StatusBadRequest, "slot name is required")
		case errors.Is(err, service.ErrSlotVolatility):
			respondError(c, http.StatusBadRequest, "volatility must be low, medium or high")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create slot")
		}
		return
	}
	respondData(c, http.StatusCreated, slot)
}

// UpdateSlot 更新老虎机
func (a *API) UpdateSlot(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid slot id")
		return
	}

	var req slotRequest
	if !bindJSON(c, &req, "slot name is required") {
		return
	}

	slot, err := a.slots.Update(id, slotInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			respondError(c, http.StatusNotFound, "slot not found")
		case errors.Is(err, service.ErrSlotName):
			respondError(c, http.StatusBadRequest, "slot name is required")
		case errors.Is(err, service.ErrSlotVolatility):
			respondError(c, http.StatusBadRequest, "volatility must be low, medium or high")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update slot")
		}
		return
	}
	respondData(c, http.StatusOK, slot)
}

// DeleteSlot 删除老虎机
func (a *API) DeleteSlot(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid slot id")
		return
	}

	if err := a.slots.Delete(id); err != nil {
		if errors.Is(err, service.ErrSlotNotFound) {
			respondError(c, http.StatusNotFound, "slot not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete slot")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

func slotInput(req slotRequest) service.SlotInput {
	return service.SlotInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Locale:       req.Locale,
		Provider:     req.Provider,
		Rating:       req.Rating,
		RTP:          req.RTP,
		Volatility:   req.Volatility,
		MinBet:       req.MinBet,
		MaxBet:       req.MaxBet,
		IsPopular:    req.IsPopular,
		ReleaseDate:  req.ReleaseDate,
		CategoryID:   req.CategoryID,
		CoverImageID: req.CoverImageID,
		Publish:      req.Publish,
	}
}
