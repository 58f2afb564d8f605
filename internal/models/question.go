package models

// Question is stored with a loose reference to its category: there is no
// foreign key and inserts are not checked against the category table.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"index" json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (Question) TableName() string {
	return "question"
}
