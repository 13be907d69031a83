package db

import (
	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

// SeedBatch is a set of catalog rows inserted together.
type SeedBatch struct {
	Exercises         []models.Exercise
	Recipes           []models.Recipe
	Products          []models.Product
	SubscriptionPlans []models.SubscriptionPlan
	Articles          []models.Article
	Videos            []models.Video
	ForumTopics       []models.ForumTopic
}

type SeedCounts struct {
	Exercises         int
	Recipes           int
	Products          int
	SubscriptionPlans int
	Articles          int
	Videos            int
	ForumTopics       int
}

type SeedRepository struct {
	database *gorm.DB
}

func NewSeedRepository(database *gorm.DB) *SeedRepository {
	return &SeedRepository{database: database}
}

// Insert writes the whole batch in one transaction. Recipes are stored with
// their ingredients.
func (repo *SeedRepository) Insert(batch SeedBatch) (SeedCounts, error) {
	counts := SeedCounts{
		Exercises:         len(batch.Exercises),
		Recipes:           len(batch.Recipes),
		Products:          len(batch.Products),
		SubscriptionPlans: len(batch.SubscriptionPlans),
		Articles:          len(batch.Articles),
		Videos:            len(batch.Videos),
		ForumTopics:       len(batch.ForumTopics),
	}

	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := createAll(tx, batch.Exercises); err != nil {
			return err
		}
		if err := createAll(tx, batch.Recipes); err != nil {
			return err
		}
		if err := createAll(tx, batch.Products); err != nil {
			return err
		}
		if err := createAll(tx, batch.SubscriptionPlans); err != nil {
			return err
		}
		if err := createAll(tx, batch.Articles); err != nil {
			return err
		}
		if err := createAll(tx, batch.Videos); err != nil {
			return err
		}
		return createAll(tx, batch.ForumTopics)
	})
	if err != nil {
		return SeedCounts{}, err
	}
	return counts, nil
}

func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
