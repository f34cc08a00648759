package models

import "time"

// BaseModel carries the surrogate key and timestamps shared by cafes and
// users. No soft delete: likes must cascade on a real row removal.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
