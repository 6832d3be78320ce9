package handler

import (
	"errors"
	"net/http"

	"github.com/casinohub/internal/db"
	"github.com/casinohub/internal/service"
	"github.com/gin-gonic/gin"
)

// commentRequest is the public submission payload. A status field is accepted
// but deliberately ignored: moderation is mandatory, so every new comment
// lands as pending.
type commentRequest struct {
	Text        string   `json:"text" binding:"required"`
	AuthorName  string   `json:"author_name" binding:"required"`
	AuthorEmail string   `json:"author_email"`
	Rating      *float64 `json:"rating"`
	Status      string   `json:"status"`
	CasinoID    *uint    `json:"casino_id"`
	ArticleID   *uint    `json:"article_id"`
	SlotID      *uint    `json:"slot_id"`
}

type moderateRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetComments 获取已发布评论列表
func (a *API) GetComments(c *gin.Context) {
	_, page, pageSize := listParams(c)
	comments, total, err := a.comments.List(page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list comments")
		return
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	respondList(c, comments, page, pageSize, total)
}

// GetCommentsByCasino 获取指定娱乐场的已发布评论
func (a *API) GetCommentsByCasino(c *gin.Context) {
	a.commentsByParent(c, a.comments.ListByCasino)
}

// GetCommentsByArticle 获取指定文章的已发布评论
func (a *API) GetCommentsByArticle(c *gin.Context) {
	a.commentsByParent(c, a.comments.ListByArticle)
}

// GetCommentsBySlot 获取指定老虎机的已发布评论
func (a *API) GetCommentsBySlot(c *gin.Context) {
	a.commentsByParent(c, a.comments.ListBySlot)
}

func (a *API) commentsByParent(c *gin.Context, list func(uint, int) ([]db.Comment, error)) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}

	comments, err := list(id, limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list comments")
		return
	}
	respondData(c, http.StatusOK, comments)
}

// CreateComment 创建评论，状态强制为 pending
func (a *API) CreateComment(c *gin.Context) {
	var req commentRequest
	if !bindJSON(c, &req, "comment text and author name are required") {
		return
	}

	comment, err := a.comments.Create(service.CommentInput{
		Text:        req.Text,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Rating:      req.Rating,
		CasinoID:    req.CasinoID,
		ArticleID:   req.ArticleID,
		SlotID:      req.SlotID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentText):
			respondError(c, http.StatusBadRequest, "comment text is required")
		case errors.Is(err, service.ErrCommentAuthor):
			respondError(c, http.StatusBadRequest, "author name is required")
		case errors.Is(err, service.ErrCommentParent):
			respondError(c, http.StatusBadRequest, "comment needs exactly one parent")
		case errors.Is(err, service.ErrCommentRating):
			respondError(c, http.StatusBadRequest, "rating must be between 0 and 5")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create comment")
		}
		return
	}
	respondData(c, http.StatusCreated, comment)
}

// ModerateComment 推进评论状态（published 或 rejected）
func (a *API) ModerateComment(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid comment id")
		return
	}

	var req moderateRequest
	if !bindJSON(c, &req, "status is required") {
		return
	}

	comment, err := a.comments.Moderate(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			respondError(c, http.StatusNotFound, "comment not found")
		case errors.Is(err, service.ErrCommentStatus):
			respondError(c, http.StatusBadRequest, "status must be published or rejected")
		default:
			respondError(c, http.StatusInternalServerError, "failed to moderate comment")
		}
		return
	}
	respondData(c, http.StatusOK, comment)
}

// GetCommentStats 获取评论统计
func (a *API) GetCommentStats(c *gin.Context) {
	stats, err := a.comments.Stats()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load comment stats")
		return
	}
	respondData(c, http.StatusOK, stats)
}
