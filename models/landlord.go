package models

import "time"

// Landlord scopes every tenant, property, lease and payment record.
// It is resolved from the authenticated user, never from the payload.
type Landlord struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;unique" json:"user_id"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
