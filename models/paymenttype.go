package models

// PaymentType is global reference data (rent, deposit, ...). Seeded at
// migrate time, read-only afterwards.
type PaymentType struct {
	ID    int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Label string `gorm:"not null;unique" json:"label" form:"label"`
}
