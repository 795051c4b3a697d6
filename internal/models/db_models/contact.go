package db_models

import "time"

type Contact struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone          string    `json:"phone"`
	Notes          string    `json:"notes"`
	GooglePlusCode string    `json:"googlePlusCode"`
	CreatedAt      time.Time `json:"createdAt"`
}
