package handler

import (
	"errors"
	"net/http"

	"github.com/casinohub/internal/service"
	"github.com/gin-gonic/gin"
)

type articleRequest struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug"`
	Locale         string `json:"locale"`
	Content        string `json:"content"`
	Excerpt        string `json:"excerpt"`
	Author         string `json:"author"`
	Tags           string `json:"tags"`
	ReadingTime    int    `json:"reading_time"`
	IsFeatured     bool   `json:"is_featured"`
	CategoryID     *uint  `json:"category_id"`
	PreviewImageID *uint  `json:"preview_image_id"`
	Publish        bool   `json:"publish"`
}

// GetArticles 获取文章列表
func (a *API) GetArticles(c *gin.Context) {
	locale, page, pageSize := listParams(c)
	result, err := a.articles.List(service.ArticleFilter{
		Locale:   locale,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list articles")
		return
	}
	respondList(c, result.Articles, result.Page, result.PageSize, result.Total)
}

// GetArticle 获取单篇文章并累加浏览数
func (a *API) GetArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := a.articles.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "article not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load article")
		return
	}
	respondData(c, http.StatusOK, article)
}

// GetArticleBySlug 按 slug 获取已发布文章
func (a *API) GetArticleBySlug(c *gin.Context) {
	article, err := a.articles.GetBySlug(c.Param("slug"), c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "article not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load article")
		return
	}
	respondData(c, http.StatusOK, article)
}

// GetFeaturedArticles 获取精选文章
func (a *API) GetFeaturedArticles(c *gin.Context) {
	articles, err := a.articles.ListFeatured(c.Query("locale"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list featured articles")
		return
	}
	respondData(c, http.StatusOK, articles)
}

// GetPopularArticles 按浏览量获取热门文章
func (a *API) GetPopularArticles(c *gin.Context) {
	articles, err := a.articles.ListPopular(c.Query("locale"), limitParam(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list popular articles")
		return
	}
	respondData(c, http.StatusOK, articles)
}

// CreateArticle 创建文章
func (a *API) CreateArticle(c *gin.Context) {
	var req articleRequest
	if !bindJSON(c, &req, "article title is required") {
		return
	}

	article, err := a.articles.Create(articleInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleSlugExists):
			respondError(c, http.StatusBadRequest, "article slug already exists")
		case errors.Is(err, service.ErrArticleSlugInvalid):
			respondError(c, http.StatusBadRequest, "article slug is not a valid slug")
		case errors.Is(err, service.ErrArticleTitle):
			respondError(c, http.StatusBadRequest, "article title is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create article")
		}
		return
	}
	respondData(c, http.StatusCreated, article)
}

// UpdateArticle 更新文章
func (a *API) UpdateArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	var req articleRequest
	if !bindJSON(c, &req, "article title is required") {
		return
	}

	article, err := a.articles.Update(id, articleInput(req))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			respondError(c, http.StatusNotFound, "article not found")
		case errors.Is(err, service.ErrArticleTitle):
			respondError(c, http.StatusBadRequest, "article title is required")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update article")
		}
		return
	}
	respondData(c, http.StatusOK, article)
}

// DeleteArticle 删除文章
func (a *API) DeleteArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := a.articles.Delete(id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "article not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete article")
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

func articleInput(req articleRequest) service.ArticleInput {
	return service.ArticleInput{
		Title:          req.Title,
		Slug:           req.Slug,
		Locale:         req.Locale,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		Author:         req.Author,
		Tags:           req.Tags,
		ReadingTime:    req.ReadingTime,
		IsFeatured:     req.IsFeatured,
		CategoryID:     req.CategoryID,
		PreviewImageID: req.PreviewImageID,
		Publish:        req.Publish,
	}
}
