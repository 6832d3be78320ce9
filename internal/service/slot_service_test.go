package service

import (
	"errors"
	"testing"

	"github.com/casinohub/internal/db"
)

func TestSlotListHighRTPFiltersAndOrders(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSlotService(gdb)

	slots := []db.Slot{
		{Name: "Book of Gold", Slug: "book-of-gold", Locale: "it", RTP: 96.5, PublishedAt: published()},
		{Name: "Fruit Blast", Slug: "fruit-blast", Locale: "it", RTP: 94.2, PublishedAt: published()},
		{Name: "Mega Gems", Slug: "mega-gems", Locale: "it", RTP: 98.1, PublishedAt: published()},
		{Name: "Hidden Draft", Slug: "hidden-draft", Locale: "it", RTP: 99.0},
	}
	for i := range slots {
		if err := gdb.Create(&slots[i]).Error; err != nil {
			t.Fatalf("failed to seed slot: %v", err)
		}
	}

	got, err := svc.ListHighRTP("it", 0)
	if err != nil {
		t.Fatalf("failed to list high rtp slots: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(got))
	}
	if got[0].Slug != "mega-gems" || got[1].Slug != "book-of-gold" {
		t.Fatalf("unexpected order: %s, %s", got[0].Slug, got[1].Slug)
	}
}

func TestSlotListPopular(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSlotService(gdb)

	slots := []db.Slot{
		{Name: "Popular One", Slug: "popular-one", Locale: "it", IsPopular: true, Rating: 9, PublishedAt: published()},
		{Name: "Quiet One", Slug: "quiet-one", Locale: "it", Rating: 9.5, PublishedAt: published()},
	}
	for i := range slots {
		if err := gdb.Create(&slots[i]).Error; err != nil {
			t.Fatalf("failed to seed slot: %v", err)
		}
	}

	got, err := svc.ListPopular("it", 0)
	if err != nil {
		t.Fatalf("failed to list popular slots: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "popular-one" {
		t.Fatalf("unexpected popular listing: %+v", got)
	}
}

func TestSlotListByProviderIsCaseInsensitive(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSlotService(gdb)

	slot := db.Slot{Name: "Starfall", Slug: "starfall", Locale: "it", Provider: "NetEnt", PublishedAt: published()}
	if err := gdb.Create(&slot).Error; err != nil {
		t.Fatalf("failed to seed slot: %v", err)
	}

	got, err := svc.ListByProvider("netent", "it")
	if err != nil {
		t.Fatalf("failed to list by provider: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(got))
	}
}

func TestSlotCreateRejectsUnknownVolatility(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSlotService(gdb)

	_, err := svc.Create(SlotInput{Name: "Bad Slot", Locale: "it", Volatility: "extreme"})
	if !errors.Is(err, ErrSlotVolatility) {
		t.Fatalf("expected ErrSlotVolatility, got %v", err)
	}

	_, err = svc.Create(SlotInput{Name: "Bad Slot", Slug: "bad slug", Locale: "it", Volatility: db.VolatilityLow})
	if !errors.Is(err, ErrSlotSlugInvalid) {
		t.Fatalf("expected ErrSlotSlugInvalid, got %v", err)
	}
}
