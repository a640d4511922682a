package models

import "time"

// DateLayout is the wire format for payment dates.
const DateLayout = "2006-01-02"

// Payment records money received from a tenant. RentedPropertyID is
// derived from the tenant's current lease at write time, never supplied
// by the caller; it stays null when the tenant has no lease.
type Payment struct {
	ID               int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Date             time.Time  `gorm:"not null" json:"-"`
	Amount           int64      `gorm:"not null" json:"amount" form:"amount"`
	RefNum           string     `gorm:"column:ref_num;not null" json:"ref_num" form:"ref_num"`
	TenantID         int64      `gorm:"column:tenant_id;not null" json:"tenant"`
	RentedPropertyID *int64     `gorm:"column:rented_property_id" json:"rented_property"`
	PaymentTypeID    int64      `gorm:"column:payment_type_id;not null" json:"payment_type"`
	LandlordID       int64      `gorm:"column:landlord_id;not null" json:"landlord"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}
