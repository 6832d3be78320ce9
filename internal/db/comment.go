package db

import "time"

// 评论状态取值。新评论始终以 pending 入库，由审核动作推进。
const (
	CommentStatusPending   = "pending"
	CommentStatusPublished = "published"
	CommentStatusRejected  = "rejected"
)

// Comment 定义了评论模型。CasinoID/ArticleID/SlotID 三者恰好有一个非空。
type Comment struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Text        string    `gorm:"type:text" json:"text"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Rating      *float64  `json:"rating"`
	Status      string    `gorm:"default:pending;index" json:"status"`

	CasinoID  *uint   `json:"-"`
	Casino    *Casino `gorm:"foreignKey:CasinoID" json:"casino_review,omitempty"`
	ArticleID *uint   `json:"-"`
	Article   *Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	SlotID    *uint   `json:"-"`
	Slot      *Slot   `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
}
