package service

import (
	"errors"
	"math"
	"strings"

	"github.com/casinohub/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrCommentText     = errors.New("comment text is required")
	ErrCommentAuthor   = errors.New("comment author name is required")
	ErrCommentParent   = errors.New("comment needs exactly one parent")
	ErrCommentStatus   = errors.New("comment status is invalid")
	ErrCommentRating   = errors.New("comment rating is out of range")
)

// CommentService wraps comment queries. Public listings only ever expose
// published comments; submission is the one write the public API allows.
type CommentService struct {
	db *gorm.DB
}

// CommentInput carries fields for a new comment submission. Any status a
// client sends is ignored: moderation is mandatory.
type CommentInput struct {
	Text        string
	AuthorName  string
	AuthorEmail string
	Rating      *float64
	CasinoID    *uint
	ArticleID   *uint
	SlotID      *uint
}

// CommentStats aggregates moderation counters and the average published
// rating. Computed by scanning published rated rows on every call.
type CommentStats struct {
	Published     int64   `json:"published"`
	Pending       int64   `json:"pending"`
	Rejected      int64   `json:"rejected"`
	Total         int64   `json:"total"`
	AverageRating float64 `json:"average_rating"`
}

// NewCommentService creates a CommentService instance.
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb}
}

func (s *CommentService) publishedScope(tx *gorm.DB) *gorm.DB {
	return tx.Where("status = ?", db.CommentStatusPublished)
}

// List returns published comments, newest first.
func (s *CommentService) List(page, pageSize int) ([]db.Comment, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	var total int64
	if err := s.publishedScope(s.db.Model(&db.Comment{})).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []db.Comment
	query := commentDefaultPopulate.apply(
		s.publishedScope(s.db.Model(&db.Comment{})))
	if err := query.
		Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// ListByCasino returns published comments on one casino review.
func (s *CommentService) ListByCasino(casinoID uint, limit int) ([]db.Comment, error) {
	return s.listByParent("casino_id", casinoID, limit)
}

// ListByArticle returns published comments on one article.
func (s *CommentService) ListByArticle(articleID uint, limit int) ([]db.Comment, error) {
	return s.listByParent("article_id", articleID, limit)
}

// ListBySlot returns published comments on one slot.
func (s *CommentService) ListBySlot(slotID uint, limit int) ([]db.Comment, error) {
	return s.listByParent("slot_id", slotID, limit)
}

func (s *CommentService) listByParent(column string, id uint, limit int) ([]db.Comment, error) {
	if limit <= 0 {
		limit = 10
	}
	var comments []db.Comment
	query := commentDefaultPopulate.apply(s.publishedScope(s.db))
	if err := query.
		Where(column+" = ?", id).
		Order("created_at desc").
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create stores a new comment. The status always starts at pending no matter
// what the submitter asked for, and the text is stripped of markup.
func (s *CommentService) Create(input CommentInput) (*db.Comment, error) {
	text := strings.TrimSpace(sanitizeText(input.Text))
	if text == "" {
		return nil, ErrCommentText
	}
	author := strings.TrimSpace(input.AuthorName)
	if author == "" {
		return nil, ErrCommentAuthor
	}
	if err := validateParent(input); err != nil {
		return nil, err
	}
	if input.Rating != nil && (*input.Rating < 0 || *input.Rating > 5) {
		return nil, ErrCommentRating
	}

	comment := db.Comment{
		Text:        text,
		AuthorName:  author,
		AuthorEmail: strings.TrimSpace(input.AuthorEmail),
		Rating:      input.Rating,
		Status:      db.CommentStatusPending,
		CasinoID:    input.CasinoID,
		ArticleID:   input.ArticleID,
		SlotID:      input.SlotID,
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	var created db.Comment
	query := commentDefaultPopulate.apply(s.db)
	if err := query.First(&created, comment.ID).Error; err != nil {
		return &comment, nil
	}
	return &created, nil
}

// Moderate advances a pending comment to published or rejected.
func (s *CommentService) Moderate(id uint, status string) (*db.Comment, error) {
	if status != db.CommentStatusPublished && status != db.CommentStatusRejected {
		return nil, ErrCommentStatus
	}

	var comment db.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	comment.Status = status
	if err := s.db.Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Stats counts comments per status and averages published ratings. This is a
// full scan of rated published rows; acceptable at the volumes a review site
// sees.
func (s *CommentService) Stats() (*CommentStats, error) {
	stats := &CommentStats{}

	counts := []struct {
		status string
		dest   *int64
	}{
		{db.CommentStatusPublished, &stats.Published},
		{db.CommentStatusPending, &stats.Pending},
		{db.CommentStatusRejected, &stats.Rejected},
	}
	for _, c := range counts {
		if err := s.db.Model(&db.Comment{}).
			Where("status = ?", c.status).
			Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	stats.Total = stats.Published + stats.Pending + stats.Rejected

	var ratings []float64
	if err := s.db.Model(&db.Comment{}).
		Where("status = ? AND rating IS NOT NULL", db.CommentStatusPublished).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}
	if len(ratings) > 0 {
		var sum float64
		for _, r := range ratings {
			sum += r
		}
		stats.AverageRating = math.Round(sum/float64(len(ratings))*10) / 10
	}

	return stats, nil
}

func validateParent(input CommentInput) error {
	parents := 0
	if input.CasinoID != nil {
		parents++
	}
	if input.ArticleID != nil {
		parents++
	}
	if input.SlotID != nil {
		parents++
	}
	if parents != 1 {
		return ErrCommentParent
	}
	return nil
}
