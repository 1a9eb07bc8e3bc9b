package model

type Category struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Slug        string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:255" json:"description,omitempty"`
	Icon        string `gorm:"size:50" json:"icon,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
