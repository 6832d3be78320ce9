package main

import (
	"log"

	"github.com/casinohub/internal/client"
	"github.com/casinohub/internal/config"
	"github.com/casinohub/internal/content"
	"github.com/casinohub/internal/site"
	"github.com/casinohub/internal/siteurl"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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

	store := content.NewStore(client.New(cfg.APIBaseURL, cfg.APIToken, logging), logging)
	server := site.NewServer(store, siteurl.NewResolver(cfg.SiteBaseURL), logging)

	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)
	server.RegisterRoutes(r)

	logging.Info("starting site", zap.String("addr", cfg.SiteListenAddr))
	if err := r.Run(cfg.SiteListenAddr); err != nil {
		logging.Fatal("site exited", zap.Error(err))
	}
}
