package models

import "time"

// Tenant is a renter managed by a landlord. The schema settled on a
// single full_name field; the old first/middle/last split is gone.
type Tenant struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PhoneNumber string     `gorm:"column:phone_number" json:"phone_number" form:"phone_number"`
	Email       string     `gorm:"default:''" json:"email" form:"email"`
	FullName    string     `gorm:"column:full_name;not null" json:"full_name" form:"full_name"`
	LandlordID  int64      `gorm:"column:landlord_id;not null" json:"landlord"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func (tenant Tenant) MissingFields() string {
	if tenant.FullName == "" {
		return "full_name"
	}
	return ""
}
