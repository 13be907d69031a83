package models

import "time"

type ProgressEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Date            time.Time `gorm:"not null" json:"date"`
	WeightKG        *float64  `gorm:"column:weight_kg" json:"weight_kg,omitempty"`
	ExerciseMinutes int       `gorm:"not null;default:0" json:"exercise_minutes"`
	Notes           string    `json:"notes"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}

type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content   string    `gorm:"not null" json:"content"`
	Category  string    `gorm:"not null;index" json:"category"`
	AuthorID  *uint     `json:"author_id,omitempty"`
	Published bool      `gorm:"not null" json:"published"`
	Date      time.Time `gorm:"not null" json:"date"`
}

type Video struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `gorm:"not null" json:"video_url"`
	Category    string    `gorm:"not null;index" json:"category"`
	Duration    int       `gorm:"not null;default:0" json:"duration"`
	Published   bool      `gorm:"not null" json:"published"`
	Date        time.Time `gorm:"not null" json:"date"`
}

type ForumTopic struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `json:"description"`
	LastActivity time.Time `gorm:"not null" json:"last_activity"`
}

type ForumThread struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	TopicID    uint         `gorm:"not null;index" json:"topic_id"`
	Title      string       `gorm:"not null" json:"title"`
	Content    string       `gorm:"not null" json:"content"`
	AuthorID   uint         `gorm:"not null" json:"author_id"`
	Author     *User        `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	ReplyCount int          `gorm:"-:migration;->" json:"reply_count"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Replies    []ForumReply `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}

type ForumReply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ThreadID  uint      `gorm:"not null;index" json:"thread_id"`
	Content   string    `gorm:"not null" json:"content"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ForumReply) TableName() string {
	return "forum_replies"
}
