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
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotSlugExists  = errors.New("slot slug already exists")
	ErrSlotSlugInvalid = errors.New("slot slug is not a valid slug")
	ErrSlotName        = errors.New("slot name is required")
	ErrSlotVolatility  = errors.New("slot volatility is invalid")
)

// highRTPThreshold marks the cutoff for the "high RTP" listing.
const highRTPThreshold = 96.0

// SlotService wraps slot queries and their listing defaults.
type SlotService struct {
	db *gorm.DB
}

// SlotFilter describes filters for listing slots.
type SlotFilter struct {
	Locale   string
	Page     int
	PageSize int
}

// SlotListResult aggregates paginated list data.
type SlotListResult struct {
	Slots    []db.Slot
	Total    int64
	Page     int
	PageSize int
}

// SlotInput carries fields for create/update operations.
type SlotInput struct {
	Name         string
	Slug         string
	Locale       string
	Provider     string
	Rating       float64
	RTP          float64
	Volatility   string
	MinBet       float64
	MaxBet       float64
	IsPopular    bool
	ReleaseDate  *time.Time
	CategoryID   *uint
	CoverImageID *uint
	Publish      bool
}

// NewSlotService creates a SlotService instance.
func NewSlotService(gdb *gorm.DB) *SlotService {
	return &SlotService{db: gdb}
}

// List returns published slots ordered by rating, best first.
func (s *SlotService) List(filter SlotFilter) (*SlotListResult, error) {
	result := &SlotListResult{Page: filter.Page, PageSize: filter.PageSize}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PageSize <= 0 {
		result.PageSize = 10
	}

	base := withLocale(publishedOnly(s.db.Model(&db.Slot{})), filter.Locale)
	if err := base.Count(&result.Total).Error; err != nil {
		return nil, err
	}

	query := slotDefaultPopulate.apply(
		withLocale(publishedOnly(s.db.Model(&db.Slot{})), filter.Locale))
	if err := query.
		Order("rating desc").
		Offset((result.Page - 1) * result.PageSize).
		Limit(result.PageSize).
		Find(&result.Slots).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// Get fetches one slot by id.
func (s *SlotService) Get(id uint) (*db.Slot, error) {
	var slot db.Slot
	query := slotDefaultPopulate.apply(s.db)
	if err := query.First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

// GetBySlug fetches one published slot by slug.
func (s *SlotService) GetBySlug(slug, locale string) (*db.Slot, error) {
	var slot db.Slot
	query := slotDefaultPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.Where("slug = ?", slug).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

// ListPopular returns published slots flagged popular, best rated first.
func (s *SlotService) ListPopular(locale string, limit int) ([]db.Slot, error) {
	if limit <= 0 {
		limit = 12
	}
	var slots []db.Slot
	query := slotCardPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.
		Where("is_popular = ?", true).
		Order("rating desc").
		Limit(limit).
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// ListByProvider returns published slots whose provider matches the given
// fragment, case-insensitively.
func (s *SlotService) ListByProvider(provider, locale string) ([]db.Slot, error) {
	fragment := "%" + strings.ToLower(strings.TrimSpace(provider)) + "%"
	var slots []db.Slot
	query := slotCardPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.
		Where("LOWER(provider) LIKE ?", fragment).
		Order("rating desc").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// ListHighRTP returns published slots with rtp >= 96 ordered by rtp.
func (s *SlotService) ListHighRTP(locale string, limit int) ([]db.Slot, error) {
	if limit <= 0 {
		limit = 12
	}
	var slots []db.Slot
	query := slotCardPopulate.apply(
		withLocale(publishedOnly(s.db), locale))
	if err := query.
		Where("rtp >= ?", highRTPThreshold).
		Order("rtp desc").
		Limit(limit).
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// Create persists a new slot.
func (s *SlotService) Create(input SlotInput) (*db.Slot, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSlotName
	}
	if err := validateVolatility(input.Volatility); err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = util.Slugify(name)
	}
	if !util.IsValidSlug(slug) {
		return nil, ErrSlotSlugInvalid
	}

	var existing db.Slot
	if err := s.db.Where("slug = ? AND locale = ?", slug, input.Locale).
		First(&existing).Error; err == nil {
		return nil, ErrSlotSlugExists
	}

	slot := db.Slot{
		Name:         name,
		Slug:         slug,
		Locale:       input.Locale,
		Provider:     strings.TrimSpace(input.Provider),
		Rating:       input.Rating,
		RTP:          input.RTP,
		Volatility:   input.Volatility,
		MinBet:       input.MinBet,
		MaxBet:       input.MaxBet,
		IsPopular:    input.IsPopular,
		ReleaseDate:  input.ReleaseDate,
		CategoryID:   input.CategoryID,
		CoverImageID: input.CoverImageID,
	}
	if input.Publish {
		now := time.Now()
		slot.PublishedAt = &now
	}

	if err := s.db.Create(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// Update applies updates to an existing slot. The slug is immutable.
func (s *SlotService) Update(id uint, input SlotInput) (*db.Slot, error) {
	var slot db.Slot
	if err := s.db.First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSlotName
	}
	if err := validateVolatility(input.Volatility); err != nil {
		return nil, err
	}

	slot.Name = name
	slot.Provider = strings.TrimSpace(input.Provider)
	slot.Rating = input.Rating
	slot.RTP = input.RTP
	slot.Volatility = input.Volatility
	slot.MinBet = input.MinBet
	slot.MaxBet = input.MaxBet
	slot.IsPopular = input.IsPopular
	slot.ReleaseDate = input.ReleaseDate
	slot.CategoryID = input.CategoryID
	slot.CoverImageID = input.CoverImageID
	if input.Publish && slot.PublishedAt == nil {
		now := time.Now()
		slot.PublishedAt = &now
	}

	if err := s.db.Save(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// Delete removes a slot and its comments.
func (s *SlotService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&db.Slot{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSlotNotFound
		}
		return tx.Where("slot_id = ?", id).Delete(&db.Comment{}).Error
	})
}

func validateVolatility(v string) error {
	switch v {
	case "", db.VolatilityLow, db.VolatilityMedium, db.VolatilityHigh:
		return nil
	default:
		return ErrSlotVolatility
	}
}
