package db

import (
	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

type ContentRepository struct {
	database *gorm.DB
}

func NewContentRepository(database *gorm.DB) *ContentRepository {
	return &ContentRepository{database: database}
}

// ListArticles returns published articles newest first. Empty category means
// all categories and limit <= 0 means no limit.
func (repo *ContentRepository) ListArticles(category string, limit int) ([]models.Article, error) {
	articles := make([]models.Article, 0)
	if err := publishedQuery(repo.database, category, limit).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (repo *ContentRepository) ListVideos(category string, limit int) ([]models.Video, error) {
	videos := make([]models.Video, 0)
	if err := publishedQuery(repo.database, category, limit).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func publishedQuery(database *gorm.DB, category string, limit int) *gorm.DB {
	query := database.Where("published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query.Order("date DESC, id DESC")
}
