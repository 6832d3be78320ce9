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
	ErrCasinoNotFound    = errors.New("casino review not found")
	ErrCasinoSlugExists  = errors.New("casino slug already exists")
	ErrCasinoSlugInvalid = errors.New("casino slug is not a valid slug")
	ErrCasinoName        = errors.New("casino name is required")
)

// topRatedThreshold keeps the "top rated" listing aligned with the 0-10
// rating scale used by reviews.
const topRatedThreshold = 8.0

// CasinoService wraps casino review queries and their listing defaults.
type CasinoService struct {
	db *gorm.DB
}

// CasinoFilter describes filters for listing casino reviews.
type CasinoFilter struct {
	Locale   string
	Page     int
	PageSize int
}

// CasinoListResult aggregates paginated list data.
type CasinoListResult struct {
	Casinos  []db.Casino
	Total    int64
	Page     int
	PageSize int
}

// CasinoInput carries fields for create/update operations.
type CasinoInput struct {
	Name           string
	Slug           string
	Locale         string
	Rating         float64
	BonusText      string
	License        string
	Pros           string
	Cons           string
	DetailedReview string
	LogoID         *uint
	Publish        bool
}

// NewCasinoService creates a CasinoService instance.
func NewCasinoService(gdb *gorm.DB) *CasinoService {
	return &CasinoService{db: gdb}
}

// List returns published casino reviews ordered by rating, best first.
// Expired bonuses are filtered out of the populated bonus list, never
// the casino itself.
func (s *CasinoService) List(filter CasinoFilter) (*CasinoListResult, error) {
	result := &CasinoListResult{Page: filter.Page, PageSize: filter.PageSize}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PageSize <= 0 {
		result.PageSize = 10
	}

	base := withLocale(publishedOnly(s.db.Model(&db.Casino{})), filter.Locale)
	if err := base.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	query := casinoDefaultPopulate.apply(
		withLocale(publishedOnly(s.db.Model(&db.Casino{})), filter.Locale))
	if err := query.
		Order("rating desc").
		Offset((result.Page - 1) * result.PageSize).
		Limit(result.PageSize).
		Find(&result.Casinos).Error; err != nil {
		return nil, err
	}

	for i := range result.Casinos {
		normalizeCasino(&result.Casinos[i], false)
	}
	return result, nil
}

// Get fetches one casino review by id.
func (s *CasinoService) Get(id uint) (*db.Casino, error) {
	var casino db.Casino
	query := casinoDefaultPopulate.apply(s.db)
	if err := query.First(&casino, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCasinoNotFound
		}
		return nil, err
	}
	normalizeCasino(&casino, true)
	return &casino, nil
}

// GetBySlug fetches one published casino review by slug.
func (s *CasinoService) GetBySlug(slug, locale string) (*db.Casino, error) {
	var casino db.Casino
	query := casinoDefaultPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.Where("slug = ?", slug).First(&casino).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCasinoNotFound
		}
		return nil, err
	}
	normalizeCasino(&casino, true)
	return &casino, nil
}

// ListTopRated returns published reviews with rating >= 8, best first.
func (s *CasinoService) ListTopRated(locale string, limit int) ([]db.Casino, error) {
	if limit <= 0 {
		limit = 10
	}
	var casinos []db.Casino
	query := casinoCardPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.
		Where("rating >= ?", topRatedThreshold).
		Order("rating desc").
		Limit(limit).
		Find(&casinos).Error; err != nil {
		return nil, err
	}
	for i := range casinos {
		normalizeCasino(&casinos[i], false)
	}
	return casinos, nil
}

// ListByLicense returns published reviews whose license matches the given
// fragment, case-insensitively.
func (s *CasinoService) ListByLicense(license, locale string) ([]db.Casino, error) {
	fragment := "%" + strings.ToLower(strings.TrimSpace(license)) + "%"
	var casinos []db.Casino
	query := casinoCardPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.
		Where("LOWER(license) LIKE ?", fragment).
		Order("rating desc").
		Find(&casinos).Error; err != nil {
		return nil, err
	}
	for i := range casinos {
		normalizeCasino(&casinos[i], false)
	}
	return casinos, nil
}

// Create persists a new casino review.
func (s *CasinoService) Create(input CasinoInput) (*db.Casino, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCasinoName
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(name)
	}
	if !util.IsValidSlug(slug) {
		return nil, ErrCasinoSlugInvalid
	}

	var existing db.Casino
	if err := s.db.Where("slug = ? AND locale = ?", slug, input.Locale).
		First(&existing).Error; err == nil {
		return nil, ErrCasinoSlugExists
	}

	casino := db.Casino{
		Name:           name,
		Slug:           slug,
		Locale:         input.Locale,
		Rating:         input.Rating,
		BonusText:      strings.TrimSpace(input.BonusText),
		License:        strings.TrimSpace(input.License),
		Pros:           input.Pros,
		Cons:           input.Cons,
		DetailedReview: input.DetailedReview,
		LogoID:         input.LogoID,
	}
	if input.Publish {
		now := time.Now()
		casino.PublishedAt = &now
	}

	if err := s.db.Create(&casino).Error; err != nil {
		return nil, err
	}
	normalizeCasino(&casino, false)
	return &casino, nil
}

// Update applies updates to an existing review. The slug is immutable.
func (s *CasinoService) Update(id uint, input CasinoInput) (*db.Casino, error) {
	var casino db.Casino
	if err := s.db.First(&casino, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCasinoNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCasinoName
	}

	casino.Name = name
	casino.Rating = input.Rating
	casino.BonusText = strings.TrimSpace(input.BonusText)
	casino.License = strings.TrimSpace(input.License)
	casino.Pros = input.Pros
	casino.Cons = input.Cons
	casino.DetailedReview = input.DetailedReview
	casino.LogoID = input.LogoID
	if input.Publish && casino.PublishedAt == nil {
		now := time.Now()
		casino.PublishedAt = &now
	}

	if err := s.db.Save(&casino).Error; err != nil {
		return nil, err
	}
	normalizeCasino(&casino, false)
	return &casino, nil
}

// Delete removes a review together with its bonuses and comments.
func (s *CasinoService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&db.Casino{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCasinoNotFound
		}
		if err := tx.Where("casino_id = ?", id).Delete(&db.Bonus{}).Error; err != nil {
			return err
		}
		return tx.Where("casino_id = ?", id).Delete(&db.Comment{}).Error
	})
}

// normalizeCasino fills the derived pros/cons lists and, for detail views,
// the rendered review HTML.
func normalizeCasino(casino *db.Casino, detail bool) {
	casino.ProsList = SplitList(casino.Pros)
	casino.ConsList = SplitList(casino.Cons)
	if detail {
		casino.ReviewHTML = renderMarkdown(casino.DetailedReview)
	}
}
