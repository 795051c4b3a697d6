package db_models

// Cemetery ids are opaque map place tokens seeded once; the table is
// read-only at request time.
type Cemetery struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}
