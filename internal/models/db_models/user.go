package db_models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	CreatedAt    time.Time `json:"createdAt"`
}
