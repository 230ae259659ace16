package db

import (
	"log"
	"moyu/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=moyu port=5432 sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed initial groups
	seedGroups()
}

func seedGroups() {
	// 检查是否已有小组数据
	var count int64
	DB.Model(&models.Group{}).Count(&count)
	if count > 0 {
		log.Println("Groups already seeded, skipping")
		return
	}

	// 创建预设小组
	groups := []models.Group{
		{Title: "技术", Slug: "tech", Description: "技术相关的文章和分享"},
		{Title: "生活", Slug: "life", Description: "生活日常、经验记录"},
		{Title: "读书", Slug: "reading", Description: "读书笔记和书评"},
		{Title: "随笔", Slug: "essays", Description: "随便写写"},
	}

	for _, group := range groups {
		if err := DB.Create(&group).Error; err != nil {
			log.Printf("Failed to create group %s: %v", group.Slug, err)
		}
	}
	log.Println("Initial groups created successfully")
}
