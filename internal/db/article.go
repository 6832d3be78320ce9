package db

import "time"

// Article 定义了新闻文章模型
type Article struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Title       string     `json:"title"`
	Slug        string     `gorm:"uniqueIndex:idx_articles_slug_locale" json:"slug"`
	Locale      string     `gorm:"uniqueIndex:idx_articles_slug_locale;size:5" json:"locale"`
	Content     string     `gorm:"type:text" json:"content"`
	ContentHTML string     `gorm:"-" json:"content_html,omitempty"`
	Excerpt     string     `json:"excerpt"`
	Author      string     `json:"author"`
	Tags        string     `json:"tags"`
	ReadingTime int        `json:"reading_time"`
	IsFeatured  bool       `json:"is_featured"`
	ViewCount   int64      `json:"view_count"`
	PublishedAt *time.Time `json:"publishedAt"`

	CategoryID *uint     `json:"-"`
	Category   *Category `json:"category,omitempty"`

	PreviewImageID *uint  `json:"-"`
	PreviewImage   *Media `json:"preview_image,omitempty"`

	Comments []Comment `gorm:"foreignKey:ArticleID" json:"comments,omitempty"`
}
