package service

import (
	"errors"
	"strings"
	"time"

	"github.com/casinohub/internal/db"
	"github.com/casinohub/internal/util"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrArticleSlugExists  = errors.New("article slug already exists")
	ErrArticleSlugInvalid = errors.New("article slug is not a valid slug")
	ErrArticleTitle       = errors.New("article title is required")
)

// ArticleService wraps article related queries and their listing defaults.
type ArticleService struct {
	db *gorm.DB
}

// ArticleFilter describes filters for listing articles.
type ArticleFilter struct {
	Locale   string
	Page     int
	PageSize int
}

// ArticleListResult aggregates paginated list data.
type ArticleListResult struct {
	Articles []db.Article
	Total    int64
	Page     int
	PageSize int
}

// ArticleInput carries fields for create/update operations.
type ArticleInput struct {
	Title          string
	Slug           string
	Locale         string
	Content        string
	Excerpt        string
	Author         string
	Tags           string
	ReadingTime    int
	IsFeatured     bool
	CategoryID     *uint
	PreviewImageID *uint
	Publish        bool
}

// NewArticleService creates an ArticleService instance.
func NewArticleService(gdb *gorm.DB) *ArticleService {
	return &ArticleService{db: gdb}
}

// List returns published articles with the default population graph,
// newest first.
func (s *ArticleService) List(filter ArticleFilter) (*ArticleListResult, error) {
	result := &ArticleListResult{Page: filter.Page, PageSize: filter.PageSize}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PageSize <= 0 {
		result.PageSize = 10
	}

	base := withLocale(publishedOnly(s.db.Model(&db.Article{})), filter.Locale)
	if err := base.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	query := articleDefaultPopulate.apply(
		withLocale(publishedOnly(s.db.Model(&db.Article{})), filter.Locale))
	if err := query.
		Order("created_at desc").
		Offset((result.Page - 1) * result.PageSize).
		Limit(result.PageSize).
		Find(&result.Articles).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Get fetches one article by id and bumps its view counter. The increment is
// a single UPDATE expression, so concurrent reads never lose more than the
// read-back value; the counter itself is best-effort.
func (s *ArticleService) Get(id uint) (*db.Article, error) {
	var article db.Article
	query := articleDefaultPopulate.apply(s.db)
	if err := query.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&db.Article{}).Where("id = ?", article.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return nil, err
	}
	article.ViewCount++
	article.ContentHTML = renderMarkdown(article.Content)
	return &article, nil
}

// GetBySlug fetches one published article by slug, optionally scoped to a
// locale.
func (s *ArticleService) GetBySlug(slug, locale string) (*db.Article, error) {
	var article db.Article
	query := articleDefaultPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	article.ContentHTML = renderMarkdown(article.Content)
	return &article, nil
}

// ListFeatured returns published featured articles, newest first.
func (s *ArticleService) ListFeatured(locale string, limit int) ([]db.Article, error) {
	if limit <= 0 {
		limit = 6
	}
	var articles []db.Article
	query := articleDefaultPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.
		Where("is_featured = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// ListPopular returns published articles ordered by view count.
func (s *ArticleService) ListPopular(locale string, limit int) ([]db.Article, error) {
	if limit <= 0 {
		limit = 6
	}
	var articles []db.Article
	query := articleDefaultPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.
		Order("view_count desc").
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Create persists a new article, deriving the slug from the title when the
// caller does not supply one.
func (s *ArticleService) Create(input ArticleInput) (*db.Article, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrArticleTitle
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(title)
	}
	if !util.IsValidSlug(slug) {
		return nil, ErrArticleSlugInvalid
	}

	var existing db.Article
	if err := s.db.Where("slug = ? AND locale = ?", slug, input.Locale).
		First(&existing).Error; err == nil {
		return nil, ErrArticleSlugExists
	}

	article := db.Article{
		Title:          title,
		Slug:           slug,
		Locale:         input.Locale,
		Content:        input.Content,
		Excerpt:        strings.TrimSpace(input.Excerpt),
		Author:         strings.TrimSpace(input.Author),
		Tags:           strings.TrimSpace(input.Tags),
		ReadingTime:    input.ReadingTime,
		IsFeatured:     input.IsFeatured,
		CategoryID:     input.CategoryID,
		PreviewImageID: input.PreviewImageID,
	}
	if input.Publish {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Update applies updates to an existing article. The slug is immutable after
// creation.
func (s *ArticleService) Update(id uint, input ArticleInput) (*db.Article, error) {
	var article db.Article
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrArticleTitle
	}

	article.Title = title
	article.Content = input.Content
	article.Excerpt = strings.TrimSpace(input.Excerpt)
	article.Author = strings.TrimSpace(input.Author)
	article.Tags = strings.TrimSpace(input.Tags)
	article.ReadingTime = input.ReadingTime
	article.IsFeatured = input.IsFeatured
	article.CategoryID = input.CategoryID
	article.PreviewImageID = input.PreviewImageID
	if input.Publish && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.db.Save(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Delete removes an article and its comments.
func (s *ArticleService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&db.Article{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrArticleNotFound
		}
		return tx.Where("article_id = ?", id).Delete(&db.Comment{}).Error
	})
}
