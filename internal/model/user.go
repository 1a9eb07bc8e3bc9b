package model

import (
	"time"
)

type User struct {
	ID                int64      `gorm:"primaryKey" json:"id"`
	Email             string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"size:255;not null" json:"-"`
	AnonimaxID        string     `gorm:"column:anonimax_id;size:20;uniqueIndex;not null" json:"anonimax_id"`
	IsVerified        bool       `gorm:"default:false" json:"is_verified"`
	IsAdmin           bool       `gorm:"default:false" json:"-"`
	VerificationToken *string    `gorm:"size:64" json:"-"`
	ResetToken        *string    `gorm:"size:64" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
