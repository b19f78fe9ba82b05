package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	GarageID  int64     `json:"-" gorm:"uniqueIndex:idx_garage_user;not null"`
	UserID    int64     `json:"-" gorm:"uniqueIndex:idx_garage_user;not null"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
