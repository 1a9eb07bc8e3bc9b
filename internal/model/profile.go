package model

import (
	"time"
)

type Profile struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	UserID        int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	AnonimaxID    string    `gorm:"column:anonimax_id;size:20;uniqueIndex;not null" json:"anonimax_id"`
	SessionID     string    `gorm:"size:100" json:"session_id,omitempty"`
	CryptoAddress string    `gorm:"size:120" json:"crypto_address,omitempty"`
	CryptoType    string    `gorm:"size:10" json:"crypto_type,omitempty"`
	City          string    `gorm:"size:50" json:"city,omitempty"`
	Bio           string    `gorm:"type:text" json:"bio,omitempty"`
	IsActive      bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
