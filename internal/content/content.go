package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/casinohub/internal/client"
	"github.com/casinohub/internal/db"
	"go.uber.org/zap"
)

// Store reads published content from the API for page rendering. Every list
// failure collapses to an empty slice and every detail failure to nil, so
// templates only ever deal with "no results" states.
type Store struct {
	api *client.Client
	log *zap.Logger
}

func NewStore(api *client.Client, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{api: api, log: log}
}

func listOf[T any](s *Store, ctx context.Context, path string, params map[string]any) []T {
	envelope := s.api.Fetch(ctx, path, params)
	if envelope.Error != nil {
		s.log.Warn("content list failed",
			zap.String("path", path),
			zap.Int("status", envelope.Error.Status),
			zap.String("message", envelope.Error.Message))
		return nil
	}

	var items []T
	if err := json.Unmarshal(envelope.Data, &items); err != nil {
		s.log.Warn("content list undecodable", zap.String("path", path), zap.Error(err))
		return nil
	}
	return items
}

// bySlug resolves one entity through its dedicated slug route. A 404 means
// the slug does not exist in that locale; any other failure also collapses
// to nil, so callers only ever see "missing".
func bySlug[T any](s *Store, ctx context.Context, path, slug, locale string) *T {
	fullPath := path + "/slug/" + url.PathEscape(slug)
	envelope := s.api.Fetch(ctx, fullPath, localeParams(locale, nil))
	if envelope.Error != nil {
		if envelope.Error.Status != http.StatusNotFound {
			s.log.Warn("content lookup failed",
				zap.String("path", fullPath),
				zap.Int("status", envelope.Error.Status),
				zap.String("message", envelope.Error.Message))
		}
		return nil
	}

	var item T
	if err := json.Unmarshal(envelope.Data, &item); err != nil {
		s.log.Warn("content lookup undecodable", zap.String("path", fullPath), zap.Error(err))
		return nil
	}
	return &item
}

func localeParams(locale string, extra map[string]any) map[string]any {
	params := map[string]any{}
	if locale != "" {
		params["locale"] = locale
	}
	for k, v := range extra {
		params[k] = v
	}
	return params
}

func (s *Store) ListArticles(ctx context.Context, locale string) []db.Article {
	return listOf[db.Article](s, ctx, "/api/articles", localeParams(locale, nil))
}

func (s *Store) ListFeaturedArticles(ctx context.Context, locale string) []db.Article {
	return listOf[db.Article](s, ctx, "/api/articles/featured", localeParams(locale, nil))
}

func (s *Store) ListPopularArticles(ctx context.Context, locale string) []db.Article {
	return listOf[db.Article](s, ctx, "/api/articles/popular", localeParams(locale, nil))
}

func (s *Store) GetArticleBySlug(ctx context.Context, slug, locale string) *db.Article {
	return bySlug[db.Article](s, ctx, "/api/articles", slug, locale)
}

func (s *Store) ListCasinos(ctx context.Context, locale string) []db.Casino {
	return listOf[db.Casino](s, ctx, "/api/casino-reviews", localeParams(locale, nil))
}

func (s *Store) ListTopRatedCasinos(ctx context.Context, locale string) []db.Casino {
	return listOf[db.Casino](s, ctx, "/api/casino-reviews/top-rated", localeParams(locale, nil))
}

func (s *Store) GetCasinoBySlug(ctx context.Context, slug, locale string) *db.Casino {
	return bySlug[db.Casino](s, ctx, "/api/casino-reviews", slug, locale)
}

func (s *Store) ListSlots(ctx context.Context, locale string) []db.Slot {
	return listOf[db.Slot](s, ctx, "/api/slots", localeParams(locale, nil))
}

func (s *Store) ListPopularSlots(ctx context.Context, locale string) []db.Slot {
	return listOf[db.Slot](s, ctx, "/api/slots/popular", localeParams(locale, nil))
}

func (s *Store) ListHighRTPSlots(ctx context.Context, locale string) []db.Slot {
	return listOf[db.Slot](s, ctx, "/api/slots/high-rtp", localeParams(locale, nil))
}

func (s *Store) GetSlotBySlug(ctx context.Context, slug, locale string) *db.Slot {
	return bySlug[db.Slot](s, ctx, "/api/slots", slug, locale)
}

func (s *Store) ListBonuses(ctx context.Context, locale string) []db.Bonus {
	return listOf[db.Bonus](s, ctx, "/api/bonuses", localeParams(locale, nil))
}

func (s *Store) ListFeaturedBonuses(ctx context.Context, locale string) []db.Bonus {
	return listOf[db.Bonus](s, ctx, "/api/bonuses/featured", localeParams(locale, nil))
}

func (s *Store) ListBonusesByType(ctx context.Context, bonusType, locale string) []db.Bonus {
	return listOf[db.Bonus](s, ctx, "/api/bonuses/type/"+url.PathEscape(bonusType), localeParams(locale, nil))
}

func (s *Store) GetBonusBySlug(ctx context.Context, slug, locale string) *db.Bonus {
	return bySlug[db.Bonus](s, ctx, "/api/bonuses", slug, locale)
}

func (s *Store) ListCategories(ctx context.Context, locale string) []db.Category {
	return listOf[db.Category](s, ctx, "/api/categories", localeParams(locale, nil))
}

func (s *Store) ListFeaturedCategories(ctx context.Context, locale string) []db.Category {
	return listOf[db.Category](s, ctx, "/api/categories/featured", localeParams(locale, nil))
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug, locale string) *db.Category {
	return bySlug[db.Category](s, ctx, "/api/categories", slug, locale)
}

func (s *Store) ListCommentsByCasino(ctx context.Context, casinoID uint) []db.Comment {
	return listOf[db.Comment](s, ctx, fmt.Sprintf("/api/comments/casino/%d", casinoID), nil)
}

func (s *Store) ListCommentsByArticle(ctx context.Context, articleID uint) []db.Comment {
	return listOf[db.Comment](s, ctx, fmt.Sprintf("/api/comments/article/%d", articleID), nil)
}

func (s *Store) ListCommentsBySlot(ctx context.Context, slotID uint) []db.Comment {
	return listOf[db.Comment](s, ctx, fmt.Sprintf("/api/comments/slot/%d", slotID), nil)
}

// SlugExists reports whether a slug resolves in the given locale for the
// given site section. Used by the locale switcher; a lookup failure counts
// as missing.
func (s *Store) SlugExists(ctx context.Context, section, slug, locale string) bool {
	switch section {
	case "news":
		return s.GetArticleBySlug(ctx, slug, locale) != nil
	case "casino-reviews":
		return s.GetCasinoBySlug(ctx, slug, locale) != nil
	case "slots":
		return s.GetSlotBySlug(ctx, slug, locale) != nil
	case "bonuses":
		return s.GetBonusBySlug(ctx, slug, locale) != nil
	default:
		return false
	}
}
