package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

var (
	ErrForumTopicNotFound  = errors.New("forum topic not found")
	ErrForumThreadNotFound = errors.New("forum thread not found")
	ErrForumTitleRequired  = errors.New("thread title is required")
	ErrForumTitleTooLong   = errors.New("thread title must be at most 200 characters")
	ErrForumContentEmpty   = errors.New("content is required")
	ErrForumSaveFailed     = errors.New("save forum post failed")
)

const (
	popularThreadLimit = 5
	maxThreadTitle     = 200
)

type ThreadInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ReplyInput struct {
	Content string `json:"content"`
}

type ForumRepository interface {
	ListTopics() ([]models.ForumTopic, error)
	FindTopic(topicID uint) (models.ForumTopic, bool, error)
	PopularThreads(limit int) ([]models.ForumThread, error)
	ListThreads(topicID uint) ([]models.ForumThread, error)
	FindThread(threadID uint) (models.ForumThread, bool, error)
	CreateThread(thread *models.ForumThread, now time.Time) error
	CreateReply(reply *models.ForumReply, topicID uint, now time.Time) error
}

type ForumOverview struct {
	Topics         []models.ForumTopic  `json:"topics"`
	PopularThreads []models.ForumThread `json:"popular_threads"`
}

type ForumService struct {
	forum ForumRepository
}

func NewForumService(forum ForumRepository) *ForumService {
	return &ForumService{forum: forum}
}

func (service *ForumService) Overview() (ForumOverview, error) {
	topics, err := service.forum.ListTopics()
	if err != nil {
		return ForumOverview{}, err
	}
	popular, err := service.forum.PopularThreads(popularThreadLimit)
	if err != nil {
		return ForumOverview{}, err
	}
	return ForumOverview{Topics: topics, PopularThreads: popular}, nil
}

func (service *ForumService) Topic(topicID uint) (models.ForumTopic, []models.ForumThread, error) {
	topic, found, err := service.forum.FindTopic(topicID)
	if err != nil {
		return models.ForumTopic{}, nil, err
	}
	if !found {
		return models.ForumTopic{}, nil, ErrForumTopicNotFound
	}
	threads, err := service.forum.ListThreads(topic.ID)
	if err != nil {
		return models.ForumTopic{}, nil, err
	}
	return topic, threads, nil
}

func (service *ForumService) Thread(threadID uint) (models.ForumThread, error) {
	thread, found, err := service.forum.FindThread(threadID)
	if err != nil {
		return models.ForumThread{}, err
	}
	if !found {
		return models.ForumThread{}, ErrForumThreadNotFound
	}
	return thread, nil
}

func (service *ForumService) CreateThread(userID uint, topicID uint, input ThreadInput, now time.Time) (models.ForumThread, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	switch {
	case title == "":
		return models.ForumThread{}, ErrForumTitleRequired
	case len([]rune(title)) > maxThreadTitle:
		return models.ForumThread{}, ErrForumTitleTooLong
	case content == "":
		return models.ForumThread{}, ErrForumContentEmpty
	}

	if _, found, err := service.forum.FindTopic(topicID); err != nil {
		return models.ForumThread{}, err
	} else if !found {
		return models.ForumThread{}, ErrForumTopicNotFound
	}

	thread := models.ForumThread{TopicID: topicID, Title: title, Content: content, AuthorID: userID}
	if err := service.forum.CreateThread(&thread, now); err != nil {
		return models.ForumThread{}, fmt.Errorf("%w: %v", ErrForumSaveFailed, err)
	}
	return thread, nil
}

// Reply adds to the thread and bumps its topic's last activity.
func (service *ForumService) Reply(userID uint, threadID uint, input ReplyInput, now time.Time) (models.ForumReply, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return models.ForumReply{}, ErrForumContentEmpty
	}
	thread, err := service.Thread(threadID)
	if err != nil {
		return models.ForumReply{}, err
	}

	reply := models.ForumReply{ThreadID: thread.ID, Content: content, AuthorID: userID}
	if err := service.forum.CreateReply(&reply, thread.TopicID, now); err != nil {
		return models.ForumReply{}, fmt.Errorf("%w: %v", ErrForumSaveFailed, err)
	}
	return reply, nil
}
