package domain

import "time"

type ForumThread struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	AuthorID  int64     `json:"-" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`

	Author *User       `json:"author,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Posts  []ForumPost `json:"posts,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

type ForumPost struct {
	ID        int64     `json:"id"`
	ThreadID  int64     `json:"thread_id" gorm:"index;not null"`
	AuthorID  int64     `json:"-" gorm:"index;not null"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Author *User `json:"author,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
