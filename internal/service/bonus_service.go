package service

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/casinohub/internal/db"
	"github.com/casinohub/internal/util"
	"gorm.io/gorm"
)

var (
	ErrBonusNotFound    = errors.New("bonus not found")
	ErrBonusSlugExists  = errors.New("bonus slug already exists")
	ErrBonusSlugInvalid = errors.New("bonus slug is not a valid slug")
	ErrBonusName        = errors.New("bonus name is required")
	ErrInvalidBonusType = errors.New("invalid bonus type")
)

// BonusService wraps bonus queries. All public listings apply the active
// filter: published, and valid_until either null (never expires) or in the
// future.
type BonusService struct {
	db *gorm.DB
}

// BonusFilter describes filters for listing bonuses.
type BonusFilter struct {
	Locale   string
	Page     int
	PageSize int
}

// BonusListResult aggregates paginated list data.
type BonusListResult struct {
	Bonuses  []db.Bonus
	Total    int64
	Page     int
	PageSize int
}

// BonusInput carries fields for create/update operations.
type BonusInput struct {
	Name                 string
	Slug                 string
	Locale               string
	BonusType            string
	BonusAmount          string
	PromoCode            string
	WageringRequirements string
	ValidUntil           *time.Time
	CasinoID             *uint
	Publish              bool
}

// NewBonusService creates a BonusService instance.
func NewBonusService(gdb *gorm.DB) *BonusService {
	return &BonusService{db: gdb}
}

func (s *BonusService) activeScope(tx *gorm.DB) *gorm.DB {
	return tx.Where("published_at IS NOT NULL").
		Where("valid_until IS NULL OR valid_until >= ?", time.Now())
}

// List returns active bonuses, newest first.
func (s *BonusService) List(filter BonusFilter) (*BonusListResult, error) {
	result := &BonusListResult{Page: filter.Page, PageSize: filter.PageSize}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PageSize <= 0 {
		result.PageSize = 20
	}

	base := withLocale(s.activeScope(s.db.Model(&db.Bonus{})), filter.Locale)
	if err := base.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	query := bonusDefaultPopulate.apply(
		withLocale(s.activeScope(s.db.Model(&db.Bonus{})), filter.Locale))
	if err := query.
		Order("created_at desc").
		Offset((result.Page - 1) * result.PageSize).
		Limit(result.PageSize).
		Find(&result.Bonuses).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Get fetches one bonus by id.
func (s *BonusService) Get(id uint) (*db.Bonus, error) {
	var bonus db.Bonus
	query := bonusDefaultPopulate.apply(s.db)
	if err := query.First(&bonus, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBonusNotFound
		}
		return nil, err
	}
	return &bonus, nil
}

// GetBySlug fetches one published bonus by slug. Expired bonuses still
// resolve here so their detail pages can show an "ended" state.
func (s *BonusService) GetBySlug(slug, locale string) (*db.Bonus, error) {
	var bonus db.Bonus
	query := bonusDefaultPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.Where("slug = ?", slug).First(&bonus).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBonusNotFound
		}
		return nil, err
	}
	return &bonus, nil
}

// ListByType returns active bonuses of one type. The type must come from the
// fixed enum; anything else is rejected so callers can map it to a 400.
func (s *BonusService) ListByType(bonusType, locale string, limit int) ([]db.Bonus, error) {
	if !slices.Contains(db.BonusTypes, bonusType) {
		return nil, ErrInvalidBonusType
	}
	if limit <= 0 {
		limit = 20
	}
	var bonuses []db.Bonus
	query := bonusDefaultPopulate.apply(
		withLocale(s.activeScope(s.db), locale))
	if err := query.
		Where("bonus_type = ?", bonusType).
		Order("created_at desc").
		Limit(limit).
		Find(&bonuses).Error; err != nil {
		return nil, err
	}
	return bonuses, nil
}

// ListFeatured returns the newest active bonuses, capped for card rows.
func (s *BonusService) ListFeatured(locale string, limit int) ([]db.Bonus, error) {
	if limit <= 0 {
		limit = 6
	}
	var bonuses []db.Bonus
	query := bonusDefaultPopulate.apply(
		withLocale(s.activeScope(s.db), locale))
	if err := query.
		Order("created_at desc").
		Limit(limit).
		Find(&bonuses).Error; err != nil {
		return nil, err
	}
	return bonuses, nil
}

// ListByCasino returns active bonuses belonging to one casino review.
func (s *BonusService) ListByCasino(casinoID uint) ([]db.Bonus, error) {
	var bonuses []db.Bonus
	query := bonusDefaultPopulate.apply(s.activeScope(s.db))
	if err := query.
		Where("casino_id = ?", casinoID).
		Order("created_at desc").
		Find(&bonuses).Error; err != nil {
		return nil, err
	}
	return bonuses, nil
}

// Create persists a new bonus.
func (s *BonusService) Create(input BonusInput) (*db.Bonus, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrBonusName
	}
	if !slices.Contains(db.BonusTypes, input.BonusType) {
		return nil, ErrInvalidBonusType
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(name)
	}
	if !util.IsValidSlug(slug) {
		return nil, ErrBonusSlugInvalid
	}

	var existing db.Bonus
	if err := s.db.Where("slug = ? AND locale = ?", slug, input.Locale).
		First(&existing).Error; err == nil {
		return nil, ErrBonusSlugExists
	}

	bonus := db.Bonus{
		Name:                 name,
		Slug:                 slug,
		Locale:               input.Locale,
		BonusType:            input.BonusType,
		BonusAmount:          strings.TrimSpace(input.BonusAmount),
		PromoCode:            strings.TrimSpace(input.PromoCode),
		WageringRequirements: strings.TrimSpace(input.WageringRequirements),
		ValidUntil:           input.ValidUntil,
		CasinoID:             input.CasinoID,
	}
	if input.Publish {
		now := time.Now()
		bonus.PublishedAt = &now
	}

	if err := s.db.Create(&bonus).Error; err != nil {
		return nil, err
	}
	return &bonus, nil
}

// Update applies updates to an existing bonus. The slug is immutable.
func (s *BonusService) Update(id uint, input BonusInput) (*db.Bonus, error) {
	var bonus db.Bonus
	if err := s.db.First(&bonus, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBonusNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrBonusName
	}
	if !slices.Contains(db.BonusTypes, input.BonusType) {
		return nil, ErrInvalidBonusType
	}

	bonus.Name = name
	bonus.BonusType = input.BonusType
	bonus.BonusAmount = strings.TrimSpace(input.BonusAmount)
	bonus.PromoCode = strings.TrimSpace(input.PromoCode)
	bonus.WageringRequirements = strings.TrimSpace(input.WageringRequirements)
	bonus.ValidUntil = input.ValidUntil
	bonus.CasinoID = input.CasinoID
	if input.Publish && bonus.PublishedAt == nil {
		now := time.Now()
		bonus.PublishedAt = &now
	}

	if err := s.db.Save(&bonus).Error; err != nil {
		return nil, err
	}
	return &bonus, nil
}

// Delete removes a bonus.
func (s *BonusService) Delete(id uint) error {
	result := s.db.Delete(&db.Bonus{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBonusNotFound
	}
	return nil
}
