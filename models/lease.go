package models

import "time"

// TenantPropertyRel links a tenant to the property they currently rent.
// Payment creation reads this relation to derive the rented property;
// when a tenant has several rows the newest one wins.
type TenantPropertyRel struct {
	ID               int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TenantID         int64      `gorm:"column:tenant_id;not null" json:"tenant"`
	RentedPropertyID int64      `gorm:"column:rented_property_id;not null" json:"rented_property"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}

func (TenantPropertyRel) TableName() string {
	return "tenant_property_rels"
}
