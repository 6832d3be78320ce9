package site

import (
	"net/http"
	"sync"

	"github.com/casinohub/internal/content"
	"github.com/casinohub/internal/db"
	"github.com/casinohub/internal/siteurl"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server renders the public site from published content. A failing backend
// degrades every section to an empty state, never a 5xx page.
type Server struct {
	content *content.Store
	urls    *siteurl.Resolver
	log     *zap.Logger
}

func NewServer(store *content.Store, urls *siteurl.Resolver, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{content: store, urls: urls, log: log}
}

// RegisterRoutes mounts every page twice: bare for the default locale and
// prefixed for the others.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	s.registerPages(&r.RouterGroup, siteurl.DefaultLocale)
	for _, locale := range siteurl.Locales {
		if locale == siteurl.DefaultLocale {
			continue
		}
		s.registerPages(r.Group("/"+locale), locale)
	}
	r.GET("/switch-locale", s.SwitchLocale)
}

func (s *Server) registerPages(g *gin.RouterGroup, locale string) {
	page := func(h func(*gin.Context, string)) gin.HandlerFunc {
		return func(c *gin.Context) { h(c, locale) }
	}

	g.GET("/", page(s.Home))
	g.GET("/news", page(s.NewsList))
	g.GET("/news/:slug", page(s.NewsDetail))
	g.GET("/casino-reviews", page(s.CasinoList))
	g.GET("/casino-reviews/:slug", page(s.CasinoDetail))
	g.GET("/slots", page(s.SlotList))
	g.GET("/slots/:slug", page(s.SlotDetail))
	g.GET("/bonuses", page(s.BonusList))
	g.GET("/bonuses/:slug", page(s.BonusDetail))
}

// pageMeta carries the SEO head block for a rendered page.
type pageMeta struct {
	Title      string
	Locale     string
	Path       string
	Canonical  string
	Current    string
	Alternates map[string]string
}

func (s *Server) meta(c *gin.Context, locale, title string) pageMeta {
	path := c.Request.URL.Path
	return pageMeta{
		Title:      title,
		Locale:     locale,
		Path:       path,
		Canonical:  s.urls.CanonicalURL(path),
		Current:    s.urls.CurrentURL(locale, path),
		Alternates: s.urls.AlternateURLs(path),
	}
}

// Home 首页：三个栏目并发拉取，互不影响
func (s *Server) Home(c *gin.Context, locale string) {
	ctx := c.Request.Context()

	var (
		wg       sync.WaitGroup
		casinos  []db.Casino
		slots    []db.Slot
		articles []db.Article
		bonuses  []db.Bonus
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		casinos = s.content.ListTopRatedCasinos(ctx, locale)
	}()
	go func() {
		defer wg.Done()
		slots = s.content.ListPopularSlots(ctx, locale)
	}()
	go func() {
		defer wg.Done()
		articles = s.content.ListArticles(ctx, locale)
	}()
	go func() {
		defer wg.Done()
		bonuses = s.content.ListFeaturedBonuses(ctx, locale)
	}()
	wg.Wait()

	c.HTML(http.StatusOK, "home.html", gin.H{
		"meta":     s.meta(c, locale, "CasinoHub"),
		"casinos":  casinos,
		"slots":    slots,
		"articles": articles,
		"bonuses":  bonuses,
	})
}

func (s *Server) NewsList(c *gin.Context, locale string) {
	articles := s.content.ListArticles(c.Request.Context(), locale)
	c.HTML(http.StatusOK, "news.html", gin.H{
		"meta":     s.meta(c, locale, "News"),
		"articles": articles,
	})
}

func (s *Server) NewsDetail(c *gin.Context, locale string) {
	article := s.content.GetArticleBySlug(c.Request.Context(), c.Param("slug"), locale)
	if article == nil {
		s.renderNotFound(c, locale)
		return
	}
	comments := s.content.ListCommentsByArticle(c.Request.Context(), article.ID)
	c.HTML(http.StatusOK, "article_detail.html", gin.H{
		"meta":     s.meta(c, locale, article.Title),
		"article":  article,
		"content":  renderMarkdown(article.Content),
		"comments": comments,
	})
}

func (s *Server) CasinoList(c *gin.Context, locale string) {
	casinos := s.content.ListCasinos(c.Request.Context(), locale)
	c.HTML(http.StatusOK, "casinos.html", gin.H{
		"meta":    s.meta(c, locale, "Casino Reviews"),
		"casinos": casinos,
	})
}

func (s *Server) CasinoDetail(c *gin.Context, locale string) {
	casino := s.content.GetCasinoBySlug(c.Request.Context(), c.Param("slug"), locale)
	if casino == nil {
		s.renderNotFound(c, locale)
		return
	}
	comments := s.content.ListCommentsByCasino(c.Request.Context(), casino.ID)
	c.HTML(http.StatusOK, "casino_detail.html", gin.H{
		"meta":     s.meta(c, locale, casino.Name),
		"casino":   casino,
		"review":   renderMarkdown(casino.DetailedReview),
		"comments": comments,
	})
}

func (s *Server) SlotList(c *gin.Context, locale string) {
	ctx := c.Request.Context()

	var (
		wg      sync.WaitGroup
		slots   []db.Slot
		highRTP []db.Slot
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		slots = s.content.ListSlots(ctx, locale)
	}()
	go func() {
		defer wg.Done()
		highRTP = s.content.ListHighRTPSlots(ctx, locale)
	}()
	wg.Wait()

	c.HTML(http.StatusOK, "slots.html", gin.H{
		"meta":    s.meta(c, locale, "Slots"),
		"slots":   slots,
		"highRTP": highRTP,
	})
}

func (s *Server) SlotDetail(c *gin.Context, locale string) {
	slot := s.content.GetSlotBySlug(c.Request.Context(), c.Param("slug"), locale)
	if slot == nil {
		s.renderNotFound(c, locale)
		return
	}
	comments := s.content.ListCommentsBySlot(c.Request.Context(), slot.ID)
	c.HTML(http.StatusOK, "slot_detail.html", gin.H{
		"meta":     s.meta(c, locale, slot.Name),
		"slot":     slot,
		"comments": comments,
	})
}

func (s *Server) BonusList(c *gin.Context, locale string) {
	bonusType := c.Query("type")

	var bonuses []db.Bonus
	if bonusType != "" {
		bonuses = s.content.ListBonusesByType(c.Request.Context(), bonusType, locale)
	} else {
		bonuses = s.content.ListBonuses(c.Request.Context(), locale)
	}

	c.HTML(http.StatusOK, "bonuses.html", gin.H{
		"meta":    s.meta(c, locale, "Bonuses"),
		"bonuses": bonuses,
		"type":    bonusType,
	})
}

func (s *Server) BonusDetail(c *gin.Context, locale string) {
	bonus := s.content.GetBonusBySlug(c.Request.Context(), c.Param("slug"), locale)
	if bonus == nil {
		s.renderNotFound(c, locale)
		return
	}
	c.HTML(http.StatusOK, "bonus_detail.html", gin.H{
		"meta":  s.meta(c, locale, bonus.Name),
		"bonus": bonus,
	})
}

// SwitchLocale 在语言之间切换，缺失翻译的详情页回退到栏目列表
func (s *Server) SwitchLocale(c *gin.Context) {
	target := c.Query("to")
	path := c.Query("path")

	c.Redirect(http.StatusFound, siteurl.SwitchPath(c.Request.Context(), s.content, path, target))
}

func (s *Server) renderNotFound(c *gin.Context, locale string) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"meta": s.meta(c, locale, "Not Found"),
	})
}
