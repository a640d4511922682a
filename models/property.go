package models

import "time"

// Property is a rental unit owned by a landlord.
type Property struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Street     string     `gorm:"not null" json:"street" form:"street"`
	City       string     `gorm:"not null" json:"city" form:"city"`
	State      string     `gorm:"not null" json:"state" form:"state"`
	PostalCode string     `gorm:"column:postal_code;not null" json:"postal_code" form:"postal_code"`
	LandlordID int64      `gorm:"column:landlord_id;not null" json:"landlord"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func (p Property) MissingFields() string {
	if p.Street == "" {
		return "street"
	} else if p.City == "" {
		return "city"
	} else if p.State == "" {
		return "state"
	} else if p.PostalCode == "" {
		return "postal_code"
	}
	return ""
}
