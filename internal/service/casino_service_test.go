package service

import (
	"errors"
	"testing"

	"github.com/casinohub/internal/db"
)

func TestCasinoCreateRejectsInvalidSlug(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCasinoService(gdb)

	_, err := svc.Create(CasinoInput{Name: "Palace", Slug: "Palace Casino", Locale: "it"})
	if !errors.Is(err, ErrCasinoSlugInvalid) {
		t.Fatalf("expected ErrCasinoSlugInvalid, got %v", err)
	}
}

func TestCasinoListTopRatedThreshold(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCasinoService(gdb)

	casinos := []db.Casino{
		{Name: "High Roller", Slug: "high-roller", Locale: "it", Rating: 9.2, PublishedAt: published()},
		{Name: "Edge Case", Slug: "edge-case", Locale: "it", Rating: 8.0, PublishedAt: published()},
		{Name: "Mid Table", Slug: "mid-table", Locale: "it", Rating: 7.9, PublishedAt: published()},
	}
	for i := range casinos {
		if err := gdb.Create(&casinos[i]).Error; err != nil {
			t.Fatalf("failed to seed casino: %v", err)
		}
	}

	got, err := svc.ListTopRated("it", 0)
	if err != nil {
		t.Fatalf("failed to list top rated casinos: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 casinos at rating >= 8, got %d", len(got))
	}
	if got[0].Slug != "high-roller" {
		t.Fatalf("expected best rated first, got %q", got[0].Slug)
	}
}

func TestCasinoProsConsFromDelimitedText(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCasinoService(gdb)

	casino := db.Casino{
		Name:        "Lucky Palace",
		Slug:        "lucky-palace",
		Locale:      "it",
		Pros:        "Fast payouts\nBig slot selection\n",
		Cons:        "No live chat; Limited payment methods",
		PublishedAt: published(),
	}
	if err := gdb.Create(&casino).Error; err != nil {
		t.Fatalf("failed to seed casino: %v", err)
	}

	got, err := svc.GetBySlug("lucky-palace", "it")
	if err != nil {
		t.Fatalf("failed to get casino: %v", err)
	}
	if len(got.ProsList) != 2 || got.ProsList[0] != "Fast payouts" {
		t.Fatalf("unexpected pros: %+v", got.ProsList)
	}
	if len(got.ConsList) != 2 || got.ConsList[1] != "Limited payment methods" {
		t.Fatalf("unexpected cons: %+v", got.ConsList)
	}
}

func TestCasinoProsConsFromJSONArray(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCasinoService(gdb)

	casino := db.Casino{
		Name:        "Royal Spin",
		Slug:        "royal-spin",
		Locale:      "it",
		Pros:        `["Great bonuses", "VIP program"]`,
		PublishedAt: published(),
	}
	if err := gdb.Create(&casino).Error; err != nil {
		t.Fatalf("failed to seed casino: %v", err)
	}

	got, err := svc.GetBySlug("royal-spin", "it")
	if err != nil {
		t.Fatalf("failed to get casino: %v", err)
	}
	if len(got.ProsList) != 2 || got.ProsList[1] != "VIP program" {
		t.Fatalf("unexpected pros: %+v", got.ProsList)
	}
}

func TestCasinoDetailRendersReview(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCasinoService(gdb)

	casino := db.Casino{
		Name:           "Lucky Palace",
		Slug:           "lucky-palace",
		Locale:         "it",
		DetailedReview: "## Verdict\nSolid choice.",
		PublishedAt:    published(),
	}
	if err := gdb.Create(&casino).Error; err != nil {
		t.Fatalf("failed to seed casino: %v", err)
	}

	got, err := svc.GetBySlug("lucky-palace", "it")
	if err != nil {
		t.Fatalf("failed to get casino: %v", err)
	}
	if got.ReviewHTML == "" {
		t.Fatal("expected rendered review")
	}
}

func TestCasinoListByLicense(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewCasinoService(gdb)

	casinos := []db.Casino{
		{Name: "Malta House", Slug: "malta-house", Locale: "it", License: "MGA/B2C/123/2020", PublishedAt: published()},
		{Name: "Curacao Club", Slug: "curacao-club", Locale: "it", License: "Curacao eGaming", PublishedAt: published()},
	}
	for i := range casinos {
		if err := gdb.Create(&casinos[i]).Error; err != nil {
			t.Fatalf("failed to seed casino: %v", err)
		}
	}

	got, err := svc.ListByLicense("mga", "it")
	if err != nil {
		t.Fatalf("failed to list by license: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "malta-house" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}
