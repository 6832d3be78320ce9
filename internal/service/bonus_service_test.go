package service

import (
	"errors"
	"testing"
	"time"

	"github.com/casinohub/internal/db"
)

func TestBonusListFiltersExpired(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewBonusService(gdb)

	bonuses := []db.Bonus{
		{Name: "Evergreen", Slug: "evergreen", Locale: "it", BonusType: db.BonusTypeWelcome, PublishedAt: published()},
		{Name: "Still Valid", Slug: "still-valid", Locale: "it", BonusType: db.BonusTypeDeposit, PublishedAt: published(), ValidUntil: timePtr(time.Now().Add(48 * time.Hour))},
		{Name: "Expired", Slug: "expired", Locale: "it", BonusType: db.BonusTypeDeposit, PublishedAt: published(), ValidUntil: timePtr(time.Now().Add(-48 * time.Hour))},
		{Name: "Draft", Slug: "draft", Locale: "it", BonusType: db.BonusTypeWelcome},
	}
	for i := range bonuses {
		if err := gdb.Create(&bonuses[i]).Error; err != nil {
			t.Fatalf("failed to seed bonus: %v", err)
		}
	}

	result, err := svc.List(BonusFilter{Locale: "it"})
	if err != nil {
		t.Fatalf("failed to list bonuses: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected total 2, got %d", result.Total)
	}
	for _, b := range result.Bonuses {
		if b.Slug == "expired" || b.Slug == "draft" {
			t.Fatalf("inactive bonus %q leaked into listing", b.Slug)
		}
	}
}

func TestBonusGetBySlugResolvesExpired(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewBonusService(gdb)

	bonus := db.Bonus{Name: "Expired", Slug: "expired", Locale: "it", BonusType: db.BonusTypeDeposit, PublishedAt: published(), ValidUntil: timePtr(time.Now().Add(-48 * time.Hour))}
	if err := gdb.Create(&bonus).Error; err != nil {
		t.Fatalf("failed to seed bonus: %v", err)
	}

	// 过期红利仍可通过 slug 直接访问，仅从列表中隐藏
	got, err := svc.GetBySlug("expired", "it")
	if err != nil {
		t.Fatalf("expected expired bonus to resolve, got %v", err)
	}
	if got.Slug != "expired" {
		t.Fatalf("unexpected bonus: %q", got.Slug)
	}
}

func TestBonusListByTypeRejectsUnknown(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewBonusService(gdb)

	_, err := svc.ListByType("mystery", "it", 0)
	if !errors.Is(err, ErrInvalidBonusType) {
		t.Fatalf("expected ErrInvalidBonusType, got %v", err)
	}
}

func TestBonusListByCasino(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewBonusService(gdb)

	casino := db.Casino{Name: "Lucky Palace", Slug: "lucky-palace", Locale: "it", PublishedAt: published()}
	if err := gdb.Create(&casino).Error; err != nil {
		t.Fatalf("failed to seed casino: %v", err)
	}
	other := db.Casino{Name: "Other", Slug: "other", Locale: "it", PublishedAt: published()}
	if err := gdb.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed casino: %v", err)
	}

	bonuses := []db.Bonus{
		{Name: "Palace Welcome", Slug: "palace-welcome", Locale: "it", BonusType: db.BonusTypeWelcome, PublishedAt: published(), CasinoID: &casino.ID},
		{Name: "Other Welcome", Slug: "other-welcome", Locale: "it", BonusType: db.BonusTypeWelcome, PublishedAt: published(), CasinoID: &other.ID},
	}
	for i := range bonuses {
		if err := gdb.Create(&bonuses[i]).Error; err != nil {
			t.Fatalf("failed to seed bonus: %v", err)
		}
	}

	got, err := svc.ListByCasino(casino.ID)
	if err != nil {
		t.Fatalf("failed to list by casino: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "palace-welcome" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestBonusCreateValidatesType(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewBonusService(gdb)

	_, err := svc.Create(BonusInput{Name: "Bad", Locale: "it", BonusType: "mystery"})
	if !errors.Is(err, ErrInvalidBonusType) {
		t.Fatalf("expected ErrInvalidBonusType, got %v", err)
	}

	_, err = svc.Create(BonusInput{Name: "Bad", Slug: "-broken-", Locale: "it", BonusType: db.BonusTypeWelcome})
	if !errors.Is(err, ErrBonusSlugInvalid) {
		t.Fatalf("expected ErrBonusSlugInvalid, got %v", err)
	}
}
