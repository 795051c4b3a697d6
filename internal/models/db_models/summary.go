package db_models

import (
	"time"

	"github.com/lib/pq"
)

// Summary is the audit record of one delivered work report. Rows are
// insert-only; the photo URL lists keep submission order.
type Summary struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ContactName  string         `gorm:"not null" json:"contactName"`
	Email        string         `gorm:"not null" json:"email"`
	Description  string         `json:"description"`
	PhotosBefore pq.StringArray `gorm:"type:text[]" json:"photosBefore"`
	PhotosAfter  pq.StringArray `gorm:"type:text[]" json:"photosAfter"`
	SentAt       time.Time      `gorm:"autoCreateTime" json:"sentAt"`
}
