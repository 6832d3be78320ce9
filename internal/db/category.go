package db

import "time"

// Category 定义了内容分类模型
type Category struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Name        string     `json:"name"`
	Slug        string     `gorm:"uniqueIndex:idx_categories_slug_locale" json:"slug"`
	Locale      string     `gorm:"uniqueIndex:idx_categories_slug_locale;size:5" json:"locale"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	IsFeatured  bool       `json:"is_featured"`
	SortOrder   int        `json:"sort_order"`
	PublishedAt *time.Time `json:"publishedAt"`

	IconID *uint  `json:"-"`
	Icon   *Media `json:"icon,omitempty"`

	Articles []Article `gorm:"foreignKey:CategoryID" json:"articles,omitempty"`
	Slots    []Slot    `gorm:"foreignKey:CategoryID" json:"slots,omitempty"`
}
