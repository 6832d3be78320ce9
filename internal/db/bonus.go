package db

import "time"

// 红利类型取值
const (
	BonusTypeWelcome   = "welcome"
	BonusTypeDeposit   = "deposit"
	BonusTypeNoDeposit = "no-deposit"
	BonusTypeFreeSpins = "free-spins"
	BonusTypeCashback  = "cashback"
	BonusTypeReload    = "reload"
)

// BonusTypes lists every accepted bonus_type value.
var BonusTypes = []string{
	BonusTypeWelcome,
	BonusTypeDeposit,
	BonusTypeNoDeposit,
	BonusTypeFreeSpins,
	BonusTypeCashback,
	BonusTypeReload,
}

// Bonus 定义了红利模型。ValidUntil 为空表示永不过期。
type Bonus struct {
	ID                    uint       `gorm:"primarykey" json:"id"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
	Name                  string     `json:"name"`
	Slug                  string     `gorm:"uniqueIndex:idx_bonuses_slug_locale" json:"slug"`
	Locale                string     `gorm:"uniqueIndex:idx_bonuses_slug_locale;size:5" json:"locale"`
	BonusType             string     `json:"bonus_type"`
	BonusAmount           string     `json:"bonus_amount"`
	PromoCode             string     `json:"promo_code"`
	WageringRequirements  string     `json:"wagering_requirements"`
	ValidUntil            *time.Time `json:"valid_until"`
	PublishedAt           *time.Time `json:"publishedAt"`

	CasinoID *uint   `json:"-"`
	Casino   *Casino `gorm:"foreignKey:CasinoID" json:"casino_review,omitempty"`
}
