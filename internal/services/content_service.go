package services

import (
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

const recommendedArticleLimit = 3

type ContentRepository interface {
	ListArticles(category string, limit int) ([]models.Article, error)
	ListVideos(category string, limit int) ([]models.Video, error)
}

type ContentLibrary struct {
	Articles []models.Article `json:"articles"`
	Videos   []models.Video   `json:"videos"`
}

type ContentService struct {
	content ContentRepository
}

func NewContentService(content ContentRepository) *ContentService {
	return &ContentService{content: content}
}

// Library lists published articles and videos, optionally for one category.
func (service *ContentService) Library(category string) (ContentLibrary, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	articles, err := service.content.ListArticles(category, 0)
	if err != nil {
		return ContentLibrary{}, err
	}
	videos, err := service.content.ListVideos(category, 0)
	if err != nil {
		return ContentLibrary{}, err
	}
	return ContentLibrary{Articles: articles, Videos: videos}, nil
}

// Recommended returns articles for the category matching the exercise goal,
// falling back to the newest articles when that category is empty.
func (service *ContentService) Recommended(goal models.Goal) ([]models.Article, error) {
	articles, err := service.content.ListArticles(ArticleCategoryForGoal(goal), recommendedArticleLimit)
	if err != nil {
		return nil, err
	}
	if len(articles) > 0 {
		return articles, nil
	}
	return service.content.ListArticles("", recommendedArticleLimit)
}

func ArticleCategoryForGoal(goal models.Goal) string {
	switch goal {
	case models.GoalWeightLoss, models.GoalFatLoss:
		return "weight_loss"
	case models.GoalMuscleGain:
		return "muscle_building"
	case models.GoalEndurance:
		return "cardio"
	default:
		return "general"
	}
}
