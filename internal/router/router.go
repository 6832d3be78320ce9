package router

import (
	"strings"

	"github.com/casinohub/internal/config"
	"github.com/casinohub/internal/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg *config.Config, gdb *gorm.DB) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	// 配置 CORS
	origins := strings.Split(cfg.CORSOrigins, ",")
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = origins
	}
	r.Use(cors.New(corsConfig))

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("casinohub_session", store))

	// 静态文件服务（上传的媒体）
	r.Static(cfg.UploadURLPath, cfg.UploadDir)

	api := handler.NewAPI(gdb, cfg.UploadDir, cfg.UploadURLPath)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 对外内容 API
	public := r.Group("/api")
	{
		public.GET("/articles", api.GetArticles)
		public.GET("/articles/featured", api.GetFeaturedArticles)
		public.GET("/articles/popular", api.GetPopularArticles)
		public.GET("/articles/slug/:slug", api.GetArticleBySlug)
		public.GET("/articles/:id", api.GetArticle)

		public.GET("/casino-reviews", api.GetCasinos)
		public.GET("/casino-reviews/top-rated", api.GetTopRatedCasinos)
		public.GET("/casino-reviews/license/:license", api.GetCasinosByLicense)
		public.GET("/casino-reviews/slug/:slug", api.GetCasinoBySlug)
		public.GET("/casino-reviews/:id", api.GetCasino)

		public.GET("/slots", api.GetSlots)
		public.GET("/slots/popular", api.GetPopularSlots)
		public.GET("/slots/high-rtp", api.GetHighRTPSlots)
		public.GET("/slots/provider/:provider", api.GetSlotsByProvider)
		public.GET("/slots/slug/:slug", api.GetSlotBySlug)
		public.GET("/slots/:id", api.GetSlot)

		public.GET("/bonuses", api.GetBonuses)
		public.GET("/bonuses/featured", api.GetFeaturedBonuses)
		public.GET("/bonuses/type/:type", api.GetBonusesByType)
		public.GET("/bonuses/casino/:id", api.GetBonusesByCasino)
		public.GET("/bonuses/slug/:slug", api.GetBonusBySlug)
		public.GET("/bonuses/:id", api.GetBonus)

		public.GET("/comments", api.GetComments)
		public.GET("/comments/stats", api.GetCommentStats)
		public.GET("/comments/casino/:id", api.GetCommentsByCasino)
		public.GET("/comments/article/:id", api.GetCommentsByArticle)
		public.GET("/comments/slot/:id", api.GetCommentsBySlot)
		public.POST("/comments", api.CreateComment)

		public.GET("/categories", api.GetCategories)
		public.GET("/categories/featured", api.GetFeaturedCategories)
		public.GET("/categories/slug/:slug", api.GetCategoryBySlug)
		public.GET("/categories/:id", api.GetCategory)
		public.GET("/categories/:id/stats", api.GetCategoryStats)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台 API
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/me", api.Me)

			auth.POST("/articles", api.CreateArticle)
			auth.PUT("/articles/:id", api.UpdateArticle)
			auth.DELETE("/articles/:id", api.DeleteArticle)

			auth.POST("/casino-reviews", api.CreateCasino)
			auth.PUT("/casino-reviews/:id", api.UpdateCasino)
			auth.DELETE("/casino-reviews/:id", api.DeleteCasino)

			auth.POST("/slots", api.CreateSlot)
			auth.PUT("/slots/:id", api.UpdateSlot)
			auth.DELETE("/slots/:id", api.DeleteSlot)

			auth.POST("/bonuses", api.CreateBonus)
			auth.PUT("/bonuses/:id", api.UpdateBonus)
			auth.DELETE("/bonuses/:id", api.DeleteBonus)

			auth.POST("/categories", api.CreateCategory)
			auth.PUT("/categories/:id", api.UpdateCategory)
			auth.DELETE("/categories/:id", api.DeleteCategory)

			auth.PUT("/comments/:id/moderate", api.ModerateComment)

			auth.POST("/upload", api.UploadMedia)
			auth.GET("/media", api.GetMediaList)
			auth.DELETE("/media/:id", api.DeleteMedia)
		}
	}

	return r
}
