package service

import (
	"time"

	"gorm.io/gorm"
)

// populateRule 描述一个需要预加载的关联以及附加在其上的约束。
type populateRule struct {
	relation string
	scope    func(tx *gorm.DB) *gorm.DB
}

// populateConfig is the declarative population graph for one entity.
// Each content type declares its default graph once instead of repeating
// Preload chains in every query.
type populateConfig []populateRule

func (p populateConfig) apply(tx *gorm.DB) *gorm.DB {
	for _, rule := range p {
		if rule.scope != nil {
			tx = tx.Preload(rule.relation, rule.scope)
		} else {
			tx = tx.Preload(rule.relation)
		}
	}
	return tx
}

func publishedOnly(tx *gorm.DB) *gorm.DB {
	return tx.Where("published_at IS NOT NULL")
}

func publishedComments(tx *gorm.DB) *gorm.DB {
	return tx.Where("status = ?", "published").Order("created_at desc")
}

// activeBonuses keeps published bonuses that either never expire or have not
// expired yet. Expiry is enforced here, at the bonus level, not on the casino.
func activeBonuses(tx *gorm.DB) *gorm.DB {
	return tx.Where("published_at IS NOT NULL").
		Where("valid_until IS NULL OR valid_until >= ?", time.Now())
}

var (
	articleDefaultPopulate = populateConfig{
		{relation: "PreviewImage"},
		{relation: "Category"},
		{relation: "Comments", scope: publishedComments},
	}

	casinoDefaultPopulate = populateConfig{
		{relation: "Logo"},
		{relation: "Bonuses", scope: activeBonuses},
		{relation: "Comments", scope: publishedComments},
	}

	casinoCardPopulate = populateConfig{
		{relation: "Logo"},
		{relation: "Bonuses", scope: activeBonuses},
	}

	slotDefaultPopulate = populateConfig{
		{relation: "CoverImage"},
		{relation: "Category"},
		{relation: "Comments", scope: publishedComments},
	}

	slotCardPopulate = populateConfig{
		{relation: "CoverImage"},
		{relation: "Category"},
	}

	bonusDefaultPopulate = populateConfig{
		{relation: "Casino"},
		{relation: "Casino.Logo"},
	}

	commentDefaultPopulate = populateConfig{
		{relation: "Casino"},
		{relation: "Article"},
		{relation: "Slot"},
	}

	categoryDefaultPopulate = populateConfig{
		{relation: "Icon"},
		{relation: "Articles", scope: func(tx *gorm.DB) *gorm.DB {
			return publishedOnly(tx).Order("created_at desc")
		}},
		{relation: "Slots", scope: func(tx *gorm.DB) *gorm.DB {
			return publishedOnly(tx).Order("rating desc")
		}},
	}
)

func withLocale(tx *gorm.DB, locale string) *gorm.DB {
	if locale == "" {
		return tx
	}
	return tx.Where("locale = ?", locale)
}
