package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// apiError is the error half of the response envelope.
type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// paginationMeta mirrors the content API pagination block.
type paginationMeta struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	PageCount int   `json:"pageCount"`
	Total     int64 `json:"total"`
}

// respondData wraps a single entity or unpaginated collection in the
// {data} envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// respondList wraps a paginated collection in the {data, meta} envelope.
func respondList(c *gin.Context, data interface{}, page, pageSize int, total int64) {
	pageCount := 0
	if pageSize > 0 {
		pageCount = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": gin.H{
			"pagination": paginationMeta{
				Page:      page,
				PageSize:  pageSize,
				PageCount: pageCount,
				Total:     total,
			},
		},
	})
}

// respondError emits the {data:null, error} envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"data":  nil,
		"error": apiError{Status: status, Message: message},
	})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// listParams pulls the common list query parameters.
func listParams(c *gin.Context) (locale string, page, pageSize int) {
	locale = strings.TrimSpace(c.Query("locale"))
	page = parsePositiveInt(c.DefaultQuery("page", "1"), 1)
	pageSize = parsePositiveInt(c.Query("pageSize"), 0)
	return locale, page, pageSize
}

func limitParam(c *gin.Context) int {
	return parsePositiveInt(c.Query("limit"), 0)
}
