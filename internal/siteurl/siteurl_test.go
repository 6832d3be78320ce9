package siteurl

import (
	"context"
	"testing"
)

type stubChecker struct {
	known map[string]bool
}

func (s *stubChecker) SlugExists(_ context.Context, section, slug, locale string) bool {
	return s.known[section+"/"+slug+"@"+locale]
}

func TestCleanPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"/news/my-article", "/news/my-article"},
		{"/en/news/my-article", "/news/my-article"},
		{"/uk", "/"},
		{"/uk/bonuses", "/bonuses"},
		{"/ukrainian-food", "/ukrainian-food"},
		{"news", "/news"},
	}
	for _, tt := range tests {
		if got := CleanPath(tt.path); got != tt.want {
			t.Errorf("CleanPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestCanonicalURLCollapsesLocales(t *testing.T) {
	r := NewResolver("https://example.com/")

	paths := []string{"/casino-reviews/foo", "/en/casino-reviews/foo", "/uk/casino-reviews/foo"}
	for _, path := range paths {
		if got := r.CanonicalURL(path); got != "https://example.com/casino-reviews/foo" {
			t.Errorf("CanonicalURL(%q) = %q", path, got)
		}
	}
}

func TestCurrentURLPrefixesNonDefault(t *testing.T) {
	r := NewResolver("https://example.com")

	if got := r.CurrentURL("it", "/slots"); got != "https://example.com/slots" {
		t.Errorf("default locale URL = %q", got)
	}
	if got := r.CurrentURL("en", "/slots"); got != "https://example.com/en/slots" {
		t.Errorf("en URL = %q", got)
	}
	if got := r.CurrentURL("uk", "/"); got != "https://example.com/uk" {
		t.Errorf("uk root URL = %q", got)
	}
}

func TestAlternateURLsCoverAllLocales(t *testing.T) {
	r := NewResolver("https://example.com")

	alternates := r.AlternateURLs("/bonuses")
	if len(alternates) != len(Locales) {
		t.Fatalf("expected %d alternates, got %d", len(Locales), len(alternates))
	}
	if alternates["it"] != "https://example.com/bonuses" {
		t.Errorf("it alternate = %q", alternates["it"])
	}
	if alternates["uk"] != "https://example.com/uk/bonuses" {
		t.Errorf("uk alternate = %q", alternates["uk"])
	}
}

func TestPathLocale(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "it"},
		{"/news", "it"},
		{"/en/news", "en"},
		{"/uk", "uk"},
		{"/ukulele", "it"},
	}
	for _, tt := range tests {
		if got := PathLocale(tt.path); got != tt.want {
			t.Errorf("PathLocale(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSwitchPathKeepsListPages(t *testing.T) {
	got := SwitchPath(context.Background(), &stubChecker{}, "/news", "en")
	if got != "/en/news" {
		t.Fatalf("expected /en/news, got %q", got)
	}

	got = SwitchPath(context.Background(), &stubChecker{}, "/en/news", "it")
	if got != "/news" {
		t.Fatalf("expected /news, got %q", got)
	}
}

func TestSwitchPathDetailWithTranslation(t *testing.T) {
	checker := &stubChecker{known: map[string]bool{"news/my-article@en": true}}

	got := SwitchPath(context.Background(), checker, "/news/my-article", "en")
	if got != "/en/news/my-article" {
		t.Fatalf("expected detail path to survive, got %q", got)
	}
}

func TestSwitchPathDetailMissingTranslationFallsBack(t *testing.T) {
	checker := &stubChecker{}

	got := SwitchPath(context.Background(), checker, "/news/my-article", "uk")
	if got != "/uk/news" {
		t.Fatalf("expected list fallback, got %q", got)
	}
}

func TestSwitchPathUnknownSectionPassesThrough(t *testing.T) {
	got := SwitchPath(context.Background(), &stubChecker{}, "/about/team", "en")
	if got != "/en/about/team" {
		t.Fatalf("expected passthrough, got %q", got)
	}

	// categories 没有 detail 页面，不参与 slug 解析
	got = SwitchPath(context.Background(), &stubChecker{}, "/categories/guide", "en")
	if got != "/en/categories/guide" {
		t.Fatalf("expected categories path to pass through, got %q", got)
	}
}
