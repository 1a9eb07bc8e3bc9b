package model

import (
	"time"
)

type Favorite struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	UserID           int64     `gorm:"not null;index:idx_fav_user_target,unique" json:"user_id"`
	TargetAnonimaxID string    `gorm:"column:target_anonimax_id;size:20;not null;index:idx_fav_user_target,unique" json:"target_anonimax_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
