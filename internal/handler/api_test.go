package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/casinohub/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestAPI(t *testing.T) (*API, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return NewAPI(gdb, t.TempDir(), "/static/uploads"), gdb
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func publishedAt(offset time.Duration) *time.Time {
	ts := time.Now().Add(offset)
	return &ts
}

func TestCreateCommentForcesPendingStatus(t *testing.T) {
	api, gdb := setupTestAPI(t)

	casino := db.Casino{Name: "Lucky Palace", Slug: "lucky-palace", Locale: "it", PublishedAt: publishedAt(-time.Hour)}
	if err := gdb.Create(&casino).Error; err != nil {
		t.Fatalf("failed to seed casino: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/comments", map[string]any{
		"text":        "Great selection of slots",
		"author_name": "Marco",
		"status":      "published",
		"casino_id":   casino.ID,
	})

	api.CreateComment(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var stored db.Comment
	if err := gdb.First(&stored).Error; err != nil {
		t.Fatalf("failed to load created comment: %v", err)
	}
	if stored.Status != db.CommentStatusPending {
		t.Fatalf("expected pending status, got %q", stored.Status)
	}
}

func TestCreateCommentRequiresExactlyOneParent(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/api/comments", map[string]any{
		"text":        "orphan",
		"author_name": "Marco",
	})

	api.CreateComment(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp struct {
		Data  any       `json:"data"`
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data != nil {
		t.Fatal("expected null data in error envelope")
	}
	if resp.Error == nil || resp.Error.Status != http.StatusBadRequest {
		t.Fatalf("unexpected error payload: %+v", resp.Error)
	}
}

func TestGetBonusesByTypeRejectsUnknownType(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/bonuses/type/mystery", nil)
	c.Params = gin.Params{{Key: "type", Value: "mystery"}}

	api.GetBonusesByType(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestGetBonusesByTypeFiltersExpired(t *testing.T) {
	api, gdb := setupTestAPI(t)

	expired := publishedAt(-24 * time.Hour)
	future := publishedAt(24 * time.Hour)
	bonuses := []db.Bonus{
		{Name: "Welcome 100%", Slug: "welcome-100", Locale: "it", BonusType: db.BonusTypeWelcome, PublishedAt: publishedAt(-time.Hour), ValidUntil: future},
		{Name: "Old Welcome", Slug: "old-welcome", Locale: "it", BonusType: db.BonusTypeWelcome, PublishedAt: publishedAt(-time.Hour), ValidUntil: expired},
		{Name: "Evergreen", Slug: "evergreen", Locale: "it", BonusType: db.BonusTypeWelcome, PublishedAt: publishedAt(-time.Hour)},
	}
	for i := range bonuses {
		if err := gdb.Create(&bonuses[i]).Error; err != nil {
			t.Fatalf("failed to seed bonus: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/bonuses/type/welcome", nil)
	c.Params = gin.Params{{Key: "type", Value: "welcome"}}

	api.GetBonusesByType(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []db.Bonus `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 active bonuses, got %d", len(resp.Data))
	}
	for _, b := range resp.Data {
		if b.Slug == "old-welcome" {
			t.Fatal("expired bonus leaked into listing")
		}
	}
}

func TestGetArticlesPaginationEnvelope(t *testing.T) {
	api, gdb := setupTestAPI(t)

	for i := 0; i < 3; i++ {
		article := db.Article{
			Title:       fmt.Sprintf("Guide %d", i),
			Slug:        fmt.Sprintf("guide-%d", i),
			Locale:      "it",
			PublishedAt: publishedAt(-time.Hour),
		}
		if err := gdb.Create(&article).Error; err != nil {
			t.Fatalf("failed to seed article: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/articles?page=1&pageSize=2", nil)

	api.GetArticles(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []db.Article `json:"data"`
		Meta struct {
			Pagination paginationMeta `json:"pagination"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 articles on page, got %d", len(resp.Data))
	}
	if resp.Meta.Pagination.Total != 3 {
		t.Fatalf("expected total 3, got %d", resp.Meta.Pagination.Total)
	}
	if resp.Meta.Pagination.PageCount != 2 {
		t.Fatalf("expected pageCount 2, got %d", resp.Meta.Pagination.PageCount)
	}
}

func TestGetArticleBySlugNotFound(t *testing.T) {
	api, _ := setupTestAPI(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/articles/slug/missing", nil)
	c.Params = gin.Params{{Key: "slug", Value: "missing"}}

	api.GetArticleBySlug(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestModerateCommentPublishes(t *testing.T) {
	api, gdb := setupTestAPI(t)

	casino := db.Casino{Name: "Lucky Palace", Slug: "lucky-palace", Locale: "it", PublishedAt: publishedAt(-time.Hour)}
	if err := gdb.Create(&casino).Error; err != nil {
		t.Fatalf("failed to seed casino: %v", err)
	}
	comment := db.Comment{Text: "pending review", AuthorName: "Anna", Status: db.CommentStatusPending, CasinoID: &casino.ID}
	if err := gdb.Create(&comment).Error; err != nil {
		t.Fatalf("failed to seed comment: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPut, fmt.Sprintf("/admin/api/comments/%d/moderate", comment.ID), map[string]any{
		"status": "published",
	})
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(comment.ID)}}

	api.ModerateComment(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored db.Comment
	if err := gdb.First(&stored, comment.ID).Error; err != nil {
		t.Fatalf("failed to reload comment: %v", err)
	}
	if stored.Status != db.CommentStatusPublished {
		t.Fatalf("expected published status, got %q", stored.Status)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	api, gdb := setupTestAPI(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	router := gin.New()
	router.Use(sessions.Sessions("casinohub_session", cookie.NewStore([]byte("test-secret"))))
	router.POST("/admin/login", api.Login)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/admin/login", map[string]any{
		"username": "admin",
		"password": "wrong",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestLoginSetsSession(t *testing.T) {
	api, gdb := setupTestAPI(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := gdb.Create(&db.User{Username: "admin", Password: string(hashed)}).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	router := gin.New()
	router.Use(sessions.Sessions("casinohub_session", cookie.NewStore([]byte("test-secret"))))
	router.POST("/admin/login", api.Login)
	router.GET("/admin/api/me", AuthRequired(), api.Me)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/admin/login", map[string]any{
		"username": "admin",
		"password": "correct-horse",
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie after login")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/api/me", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected status 200 with session, got %d", w2.Code)
	}
}
