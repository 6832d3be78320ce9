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
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategorySlugExists  = errors.New("category slug already exists")
	ErrCategorySlugInvalid = errors.New("category slug is not a valid slug")
	ErrCategoryName        = errors.New("category name is required")
)

// CategoryService wraps category queries and their listing defaults.
type CategoryService struct {
	db *gorm.DB
}

// CategoryStats counts published content attached to one category.
type CategoryStats struct {
	ArticlesCount int64 `json:"articles_count"`
	SlotsCount    int64 `json:"slots_count"`
	TotalContent  int64 `json:"total_content"`
}

// CategoryInput carries fields for create/update operations.
type CategoryInput struct {
	Name        string
	Slug        string
	Locale      string
	Description string
	Color       string
	IsFeatured  bool
	SortOrder   int
	IconID      *uint
	Publish     bool
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// List returns published categories in configured order: sort_order first,
// then name.
func (s *CategoryService) List(locale string) ([]db.Category, error) {
	var categories []db.Category
	query := categoryDefaultPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.
		Order("sort_order asc").
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get fetches one category by id.
func (s *CategoryService) Get(id uint) (*db.Category, error) {
	var category db.Category
	query := categoryDefaultPopulate.apply(s.db)
	if err := query.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug fetches one published category by slug.
func (s *CategoryService) GetBySlug(slug, locale string) (*db.Category, error) {
	var category db.Category
	query := categoryDefaultPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// ListFeatured returns published featured categories in configured order.
func (s *CategoryService) ListFeatured(locale string, limit int) ([]db.Category, error) {
	if limit <= 0 {
		limit = 6
	}
	var categories []db.Category
	query := withLocale(publishedOnly(s.db.Preload("Icon")), locale)
	if err := query.
		Where("is_featured = ?", true).
		Order("sort_order asc").
		Limit(limit).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Stats counts published articles and slots attached to one category.
func (s *CategoryService) Stats(id uint) (*CategoryStats, error) {
	var category db.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	stats := &CategoryStats{}
	if err := publishedOnly(s.db.Model(&db.Article{})).
		Where("category_id = ?", id).
		Count(&stats.ArticlesCount).Error; err != nil {
		return nil, err
	}
	if err := publishedOnly(s.db.Model(&db.Slot{})).
		Where("category_id = ?", id).
		Count(&stats.SlotsCount).Error; err != nil {
		return nil, err
	}
	stats.TotalContent = stats.ArticlesCount + stats.SlotsCount
	return stats, nil
}

// Create persists a new category.
func (s *CategoryService) Create(input CategoryInput) (*db.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryName
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(name)
	}
	if !util.IsValidSlug(slug) {
		return nil, ErrCategorySlugInvalid
	}

	var existing db.Category
	if err := s.db.Where("slug = ? AND locale = ?", slug, input.Locale).
		First(&existing).Error; err == nil {
		return nil, ErrCategorySlugExists
	}

	category := db.Category{
		Name:        name,
		Slug:        slug,
		Locale:      input.Locale,
		Description: strings.TrimSpace(input.Description),
		Color:       strings.TrimSpace(input.Color),
		IsFeatured:  input.IsFeatured,
		SortOrder:   input.SortOrder,
		IconID:      input.IconID,
	}
	if input.Publish {
		now := time.Now()
		category.PublishedAt = &now
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies updates to an existing category. The slug is immutable.
func (s *CategoryService) Update(id uint, input CategoryInput) (*db.Category, error) {
	var category db.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryName
	}

	category.Name = name
	category.Description = strings.TrimSpace(input.Description)
	category.Color = strings.TrimSpace(input.Color)
	category.IsFeatured = input.IsFeatured
	category.SortOrder = input.SortOrder
	category.IconID = input.IconID
	if input.Publish && category.PublishedAt == nil {
		now := time.Now()
		category.PublishedAt = &now
	}

	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category, detaching its content first.
func (s *CategoryService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.Article{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&db.Slot{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&db.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
