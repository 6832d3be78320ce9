package db

import "time"

// Casino 定义了娱乐场评测模型
type Casino struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	Name           string     `json:"name"`
	Slug           string     `gorm:"uniqueIndex:idx_casinos_slug_locale" json:"slug"`
	Locale         string     `gorm:"uniqueIndex:idx_casinos_slug_locale;size:5" json:"locale"`
	Rating         float64    `json:"rating"`
	BonusText      string     `json:"bonus_text"`
	License        string     `json:"license"`
	// Pros/Cons are stored as raw text; older rows hold delimited strings,
	// newer ones JSON arrays. Normalized by service.SplitList on the way out.
	Pros           string     `gorm:"type:text" json:"-"`
	Cons           string     `gorm:"type:text" json:"-"`
	ProsList       []string   `gorm:"-" json:"pros,omitempty"`
	ConsList       []string   `gorm:"-" json:"cons,omitempty"`
	DetailedReview string     `gorm:"type:text" json:"detailed_review"`
	ReviewHTML     string     `gorm:"-" json:"review_html,omitempty"`
	PublishedAt    *time.Time `json:"publishedAt"`

	LogoID *uint  `json:"-"`
	Logo   *Media `json:"logo,omitempty"`

	Bonuses  []Bonus   `gorm:"foreignKey:CasinoID" json:"bonuses,omitempty"`
	Comments []Comment `gorm:"foreignKey:CasinoID" json:"comments,omitempty"`
}
