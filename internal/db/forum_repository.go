package db

import (
	"errors"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ForumRepository struct {
	database *gorm.DB
}

func NewForumRepository(database *gorm.DB) *ForumRepository {
	return &ForumRepository{database: database}
}

func (repo *ForumRepository) ListTopics() ([]models.ForumTopic, error) {
	topics := make([]models.ForumTopic, 0)
	if err := repo.database.Order("last_activity DESC, id DESC").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (repo *ForumRepository) FindTopic(topicID uint) (models.ForumTopic, bool, error) {
	var topic models.ForumTopic
	result := repo.database.First(&topic, topicID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.ForumTopic{}, false, nil
	}
	if result.Error != nil {
		return models.ForumTopic{}, false, result.Error
	}
	return topic, true, nil
}

// PopularThreads orders threads by reply count, most replied first.
func (repo *ForumRepository) PopularThreads(limit int) ([]models.ForumThread, error) {
	threads := make([]models.ForumThread, 0)
	if err := repo.threadsWithReplyCount().
		Order("reply_count DESC, forum_threads.id ASC").
		Limit(limit).
		Find(&threads).Error; err != nil {
		return nil, err
	}
	return threads, nil
}

func (repo *ForumRepository) ListThreads(topicID uint) ([]models.ForumThread, error) {
	threads := make([]models.ForumThread, 0)
	if err := repo.threadsWithReplyCount().
		Where("forum_threads.topic_id = ?", topicID).
		Order("forum_threads.created_at DESC, forum_threads.id DESC").
		Find(&threads).Error; err != nil {
		return nil, err
	}
	return threads, nil
}

func (repo *ForumRepository) FindThread(threadID uint) (models.ForumThread, bool, error) {
	var thread models.ForumThread
	result := repo.database.
		Preload("Author").
		Preload("Replies", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC, id ASC") }).
		Preload("Replies.Author").
		First(&thread, threadID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.ForumThread{}, false, nil
	}
	if result.Error != nil {
		return models.ForumThread{}, false, result.Error
	}
	thread.ReplyCount = len(thread.Replies)
	return thread, true, nil
}

func (repo *ForumRepository) CreateThread(thread *models.ForumThread, now time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(thread).Error; err != nil {
			return err
		}
		return touchTopic(tx, thread.TopicID, now)
	})
}

// CreateReply stores the reply and bumps the owning topic's last activity.
func (repo *ForumRepository) CreateReply(reply *models.ForumReply, topicID uint, now time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(reply).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ForumThread{}).Where("id = ?", reply.ThreadID).Update("updated_at", now).Error; err != nil {
			return err
		}
		return touchTopic(tx, topicID, now)
	})
}

func (repo *ForumRepository) threadsWithReplyCount() *gorm.DB {
	return repo.database.Model(&models.ForumThread{}).
		Select("forum_threads.*, COUNT(forum_replies.id) AS reply_count").
		Joins("LEFT JOIN forum_replies ON forum_replies.thread_id = forum_threads.id").
		Group("forum_threads.id").
		Preload("Author")
}

func touchTopic(tx *gorm.DB, topicID uint, now time.Time) error {
	return tx.Model(&models.ForumTopic{}).Where("id = ?", topicID).Update("last_activity", now).Error
}
