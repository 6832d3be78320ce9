package handler

import (
	"github.com/casinohub/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	articles   *service.ArticleService
	casinos    *service.CasinoService
	slots      *service.SlotService
	bonuses    *service.BonusService
	comments   *service.CommentService
	categories *service.CategoryService
	uploadDir  string
	uploadURL  string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:         gdb,
		articles:   service.NewArticleService(gdb),
		casinos:    service.NewCasinoService(gdb),
		slots:      service.NewSlotService(gdb),
		bonuses:    service.NewBonusService(gdb),
		comments:   service.NewCommentService(gdb),
		categories: service.NewCategoryService(gdb),
		uploadDir:  uploadDir,
		uploadURL:  uploadURL,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
