package main

import (
	"fmt"
	"log"
	"time"

	"github.com/casinohub/internal/config"
	"github.com/casinohub/internal/db"
	"github.com/casinohub/internal/permission"
	"golang.org/x/crypto/bcrypt"
)

// 测试数据生成器
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("配置加载失败:", err)
	}
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}
	if err := permission.Bootstrap(db.DB); err != nil {
		log.Fatal("权限初始化失败:", err)
	}

	fmt.Println("开始生成测试数据...")

	createAdminUser()
	categories := createCategories()
	casinos := createCasinos()
	createBonuses(casinos)
	createSlots(categories)
	createArticles(categories)
	createComments(casinos)

	fmt.Println("测试数据生成完成！")
	fmt.Println("用户: admin (密码: admin123)")
}

func createAdminUser() {
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("用户已存在，跳过创建")
		return
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	db.DB.Create(&db.User{Username: "admin", Password: string(hashedPassword)})
}

func publishedNow() *time.Time {
	now := time.Now()
	return &now
}

func createCategories() []db.Category {
	var count int64
	db.DB.Model(&db.Category{}).Count(&count)
	if count > 0 {
		fmt.Println("分类已存在，跳过创建")
		var existing []db.Category
		db.DB.Find(&existing)
		return existing
	}

	categories := []db.Category{
		{Name: "Slot Machine", Slug: "slot-machine", Locale: "it", Color: "#f59e0b", IsFeatured: true, SortOrder: 1, PublishedAt: publishedNow()},
		{Name: "Guide", Slug: "guide", Locale: "it", Color: "#10b981", SortOrder: 2, PublishedAt: publishedNow()},
		{Name: "Normativa", Slug: "normativa", Locale: "it", Color: "#6366f1", SortOrder: 3, PublishedAt: publishedNow()},
	}
	for i := range categories {
		db.DB.Create(&categories[i])
	}
	return categories
}

func createCasinos() []db.Casino {
	var count int64
	db.DB.Model(&db.Casino{}).Count(&count)
	if count > 0 {
		fmt.Println("娱乐场已存在，跳过创建")
		var existing []db.Casino
		db.DB.Find(&existing)
		return existing
	}

	casinos := []db.Casino{
		{
			Name:           "Lucky Palace",
			Slug:           "lucky-palace",
			Locale:         "it",
			Rating:         9.2,
			BonusText:      "100% fino a 500€ + 200 giri gratis",
			License:        "ADM/GAD 15214",
			Pros:           "Prelievi rapidi\nOltre 3000 slot\nAssistenza in italiano",
			Cons:           "Nessuna chat notturna",
			DetailedReview: "## Il nostro verdetto\n\nLucky Palace offre un catalogo enorme e pagamenti affidabili.",
			PublishedAt:    publishedNow(),
		},
		{
			Name:           "Royal Spin",
			Slug:           "royal-spin",
			Locale:         "it",
			Rating:         8.4,
			BonusText:      "50 giri gratis senza deposito",
			License:        "MGA/B2C/394/2017",
			Pros:           `["Bonus generosi", "Programma VIP"]`,
			Cons:           `["Verifica documenti lenta"]`,
			DetailedReview: "## Il nostro verdetto\n\nRoyal Spin punta tutto sui bonus ricorrenti.",
			PublishedAt:    publishedNow(),
		},
		{
			Name:        "Corona Casino",
			Slug:        "corona-casino",
			Locale:      "it",
			Rating:      7.5,
			License:     "Curacao eGaming",
			PublishedAt: publishedNow(),
		},
	}
	for i := range casinos {
		db.DB.Create(&casinos[i])
	}
	return casinos
}

func createBonuses(casinos []db.Casino) {
	var count int64
	db.DB.Model(&db.Bonus{}).Count(&count)
	if count > 0 || len(casinos) == 0 {
		fmt.Println("红利已存在或无娱乐场，跳过创建")
		return
	}

	nextMonth := time.Now().AddDate(0, 1, 0)
	bonuses := []db.Bonus{
		{
			Name:                 "Benvenuto Lucky Palace",
			Slug:                 "benvenuto-lucky-palace",
			Locale:               "it",
			BonusType:            db.BonusTypeWelcome,
			BonusAmount:          "500€ + 200 FS",
			WageringRequirements: "35x",
			CasinoID:             &casinos[0].ID,
			PublishedAt:          publishedNow(),
		},
		{
			Name:        "Giri Gratis Royal Spin",
			Slug:        "giri-gratis-royal-spin",
			Locale:      "it",
			BonusType:   db.BonusTypeFreeSpins,
			BonusAmount: "50 giri gratis",
			PromoCode:   "SPIN50",
			ValidUntil:  &nextMonth,
			CasinoID:    &casinos[1%len(casinos)].ID,
			PublishedAt: publishedNow(),
		},
	}
	for i := range bonuses {
		db.DB.Create(&bonuses[i])
	}
}

func createSlots(categories []db.Category) {
	var count int64
	db.DB.Model(&db.Slot{}).Count(&count)
	if count > 0 {
		fmt.Println("老虎机已存在，跳过创建")
		return
	}

	var categoryID *uint
	if len(categories) > 0 {
		categoryID = &categories[0].ID
	}

	slots := []db.Slot{
		{Name: "Book of Gold", Slug: "book-of-gold", Locale: "it", Provider: "Playson", Rating: 8.8, RTP: 96.5, Volatility: db.VolatilityHigh, MinBet: 0.1, MaxBet: 100, IsPopular: true, CategoryID: categoryID, PublishedAt: publishedNow()},
		{Name: "Mega Gems", Slug: "mega-gems", Locale: "it", Provider: "NetEnt", Rating: 9.1, RTP: 97.2, Volatility: db.VolatilityMedium, MinBet: 0.2, MaxBet: 200, IsPopular: true, CategoryID: categoryID, PublishedAt: publishedNow()},
		{Name: "Fruit Blast", Slug: "fruit-blast", Locale: "it", Provider: "Pragmatic Play", Rating: 7.9, RTP: 94.8, Volatility: db.VolatilityLow, MinBet: 0.05, MaxBet: 50, CategoryID: categoryID, PublishedAt: publishedNow()},
	}
	for i := range slots {
		db.DB.Create(&slots[i])
	}
}

func createArticles(categories []db.Category) {
	var count int64
	db.DB.Model(&db.Article{}).Count(&count)
	if count > 0 {
		fmt.Println("文章已存在，跳过创建")
		return
	}

	var categoryID *uint
	if len(categories) > 1 {
		categoryID = &categories[1].ID
	}

	articles := []db.Article{
		{
			Title:       "Come scegliere un casinò online sicuro",
			Slug:        "come-scegliere-un-casino-online-sicuro",
			Locale:      "it",
			Content:     "## Licenza prima di tutto\n\nControlla sempre la licenza ADM prima di registrarti.",
			Excerpt:     "I criteri fondamentali per giocare in sicurezza.",
			Author:      "Redazione",
			ReadingTime: 5,
			IsFeatured:  true,
			CategoryID:  categoryID,
			PublishedAt: publishedNow(),
		},
		{
			Title:       "RTP e volatilità: cosa significano davvero",
			Slug:        "rtp-e-volatilita-cosa-significano-davvero",
			Locale:      "it",
			Content:     "## RTP\n\nIl ritorno al giocatore è una media statistica di lungo periodo.",
			Excerpt:     "Guida rapida ai due numeri più importanti di una slot.",
			Author:      "Redazione",
			ReadingTime: 7,
			CategoryID:  categoryID,
			PublishedAt: publishedNow(),
		},
	}
	for i := range articles {
		db.DB.Create(&articles[i])
	}
}

func createComments(casinos []db.Casino) {
	var count int64
	db.DB.Model(&db.Comment{}).Count(&count)
	if count > 0 || len(casinos) == 0 {
		fmt.Println("评论已存在或无娱乐场，跳过创建")
		return
	}

	five := 5.0
	four := 4.0
	comments := []db.Comment{
		{Text: "Prelievo arrivato in 24 ore, ottimo servizio.", AuthorName: "Marco", Rating: &five, Status: db.CommentStatusPublished, CasinoID: &casinos[0].ID},
		{Text: "Buona selezione di slot ma bonus con requisiti alti.", AuthorName: "Giulia", Rating: &four, Status: db.CommentStatusPublished, CasinoID: &casinos[0].ID},
		{Text: "In attesa di moderazione.", AuthorName: "Luca", Status: db.CommentStatusPending, CasinoID: &casinos[0].ID},
	}
	for i := range comments {
		db.DB.Create(&comments[i])
	}
}
