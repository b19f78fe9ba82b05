package domain

import "time"

type UserType string

const (
	UserTypeCarOwner    UserType = "car_owner"
	UserTypeGarageAdmin UserType = "garage_admin"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:150"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255"`
	PasswordHash string    `json:"-"`
	IsStaff      bool      `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`

	Profile *Profile `json:"profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

type Profile struct {
	ID             int64    `json:"id"`
	UserID         int64    `json:"-" gorm:"uniqueIndex"`
	UserType       UserType `json:"user_type" gorm:"size:20;default:car_owner"`
	PhoneNumber    string   `json:"phone_number,omitempty"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
}
