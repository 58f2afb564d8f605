package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:255;not null" json:"type"`
}

func (Category) TableName() string {
	return "category"
}
