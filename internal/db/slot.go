package db

import "time"

// 波动率取值
const (
	VolatilityLow    = "low"
	VolatilityMedium = "medium"
	VolatilityHigh   = "high"
)

// Slot 定义了老虎机模型
type Slot struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Name        string     `json:"name"`
	Slug        string     `gorm:"uniqueIndex:idx_slots_slug_locale" json:"slug"`
	Locale      string     `gorm:"uniqueIndex:idx_slots_slug_locale;size:5" json:"locale"`
	Provider    string     `json:"provider"`
	Rating      float64    `json:"rating"`
	RTP         float64    `json:"rtp"`
	Volatility  string     `json:"volatility"`
	MinBet      float64    `json:"min_bet"`
	MaxBet      float64    `json:"max_bet"`
	IsPopular   bool       `json:"is_popular"`
	ReleaseDate *time.Time `json:"release_date"`
	PublishedAt *time.Time `json:"publishedAt"`

	CategoryID *uint     `json:"-"`
	Category   *Category `json:"category,omitempty"`

	CoverImageID *uint  `json:"-"`
	CoverImage   *Media `json:"cover_image,omitempty"`

	Comments []Comment `gorm:"foreignKey:SlotID" json:"comments,omitempty"`
}
