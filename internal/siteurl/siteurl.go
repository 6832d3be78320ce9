package siteurl

import (
	"context"
	"strings"
)

// DefaultLocale 是站点的基准语言，其 URL 永远不带前缀。
const DefaultLocale = "it"

// Locales 列出站点支持的全部语言。
var Locales = []string{"it", "en", "uk"}

// 可切换语言的内容栏目，detail 路径形如 /{section}/{slug}。
// 必须与站点实际注册的 detail 页面保持一致。
var sections = map[string]bool{
	"news":           true,
	"casino-reviews": true,
	"slots":          true,
	"bonuses":        true,
}

// SlugChecker resolves whether a slug exists for a section in a locale.
type SlugChecker interface {
	SlugExists(ctx context.Context, section, slug, locale string) bool
}

// Resolver builds absolute URLs against the configured site base.
type Resolver struct {
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// IsSupported 判断 locale 是否受支持
func IsSupported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// CleanPath strips a leading locale prefix, yielding the default-locale form.
func CleanPath(path string) string {
	path = ensureLeadingSlash(path)
	for _, locale := range Locales {
		if locale == DefaultLocale {
			continue
		}
		prefix := "/" + locale
		if path == prefix {
			return "/"
		}
		if strings.HasPrefix(path, prefix+"/") {
			return strings.TrimPrefix(path, prefix)
		}
	}
	return path
}

// LocalizePath prefixes the clean path for non-default locales.
func LocalizePath(locale, path string) string {
	clean := CleanPath(path)
	if locale == DefaultLocale || !IsSupported(locale) {
		return clean
	}
	if clean == "/" {
		return "/" + locale
	}
	return "/" + locale + clean
}

// CanonicalURL collapses every locale variant onto the default-locale URL.
// 所有语言版本共用同一个 canonical，避免搜索引擎把各语言当作重复内容。
func (r *Resolver) CanonicalURL(path string) string {
	return r.baseURL + CleanPath(path)
}

// CurrentURL resolves the URL actually being served for the given locale.
func (r *Resolver) CurrentURL(locale, path string) string {
	return r.baseURL + LocalizePath(locale, path)
}

// AlternateURLs maps every supported locale to its localized URL, for
// hreflang tags.
func (r *Resolver) AlternateURLs(path string) map[string]string {
	alternates := make(map[string]string, len(Locales))
	for _, locale := range Locales {
		alternates[locale] = r.CurrentURL(locale, path)
	}
	return alternates
}

// PathLocale extracts the locale a path is served under.
func PathLocale(path string) string {
	path = ensureLeadingSlash(path)
	trimmed := strings.TrimPrefix(path, "/")
	head, _, _ := strings.Cut(trimmed, "/")
	if head != DefaultLocale && IsSupported(head) {
		return head
	}
	return DefaultLocale
}

// SwitchPath decides where a locale switch should navigate to. List pages
// keep their path. Detail pages keep theirs only when the slug resolves in
// the target locale; a missing translation (or any lookup failure, which is
// indistinguishable here) falls back to the section's list page.
func SwitchPath(ctx context.Context, checker SlugChecker, path, target string) string {
	if !IsSupported(target) {
		target = DefaultLocale
	}

	clean := CleanPath(path)
	section, slug := splitSectionSlug(clean)
	if section == "" || slug == "" || !sections[section] {
		return LocalizePath(target, clean)
	}

	if checker != nil && checker.SlugExists(ctx, section, slug, target) {
		return LocalizePath(target, clean)
	}
	return LocalizePath(target, "/"+section)
}

func splitSectionSlug(clean string) (string, string) {
	trimmed := strings.Trim(clean, "/")
	if trimmed == "" {
		return "", ""
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func ensureLeadingSlash(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
