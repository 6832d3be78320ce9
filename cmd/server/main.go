package main

import (
	"log"

	"github.com/casinohub/internal/config"
	"github.com/casinohub/internal/db"
	"github.com/casinohub/internal/permission"
	"github.com/casinohub/internal/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	publishedContentGauge *prometheus.GaugeVec
	pendingCommentsGauge  prometheus.Gauge
)

func init() {
	publishedContentGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "casinohub_published_content",
			Help: "Number of published entries per content type.",
		},
		[]string{"content_type"},
	)
	pendingCommentsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "casinohub_pending_comments",
			Help: "Number of comments waiting for moderation.",
		},
	)
	prometheus.MustRegister(publishedContentGauge, pendingCommentsGauge)
}

func refreshContentGauges(gdb *gorm.DB, logging *zap.Logger) {
	models := map[string]any{
		"article": &db.Article{},
		"casino":  &db.Casino{},
		"slot":    &db.Slot{},
		"bonus":   &db.Bonus{},
	}
	for name, model := range models {
		var count int64
		if err := gdb.Model(model).Where("published_at IS NOT NULL").Count(&count).Error; err != nil {
			logging.Error("content gauge refresh failed", zap.String("content_type", name), zap.Error(err))
			continue
		}
		publishedContentGauge.WithLabelValues(name).Set(float64(count))
	}

	var pending int64
	if err := gdb.Model(&db.Comment{}).
		Where("status = ?", db.CommentStatusPending).
		Count(&pending).Error; err != nil {
		logging.Error("comment gauge refresh failed", zap.Error(err))
		return
	}
	pendingCommentsGauge.Set(float64(pending))
}

// ensureAdminUser 确保配置的管理员账号存在
func ensureAdminUser(gdb *gorm.DB, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var existing db.User
	if err := gdb.Where("username = ?", cfg.AdminUsername).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return gdb.Create(&db.User{Username: cfg.AdminUsername, Password: string(hashed)}).Error
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("config load error", zap.Error(err))
	}

	if err := db.Init(cfg.DatabasePath); err != nil {
		logging.Fatal("database init failed", zap.Error(err))
	}

	if err := permission.Bootstrap(db.DB); err != nil {
		logging.Fatal("permission bootstrap failed", zap.Error(err))
	}

	if err := ensureAdminUser(db.DB, cfg); err != nil {
		logging.Fatal("admin user setup failed", zap.Error(err))
	}

	refreshContentGauges(db.DB, logging)
	cronScheduler := cron.New()
	if _, err := cronScheduler.AddFunc(cfg.GaugeSchedule, func() {
		refreshContentGauges(db.DB, logging)
	}); err != nil {
		logging.Fatal("invalid gauge schedule", zap.String("schedule", cfg.GaugeSchedule), zap.Error(err))
	}
	cronScheduler.Start()

	r := router.SetupRouter(cfg, db.DB)

	logging.Info("starting content api", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
