package models

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice is a billing record tied to a customer. Amount is stored in integer
// cents, Date as the YYYY-MM-DD issue date stamped at creation.
type Invoice struct {
	ID         string        `gorm:"type:uuid;primaryKey"`
	CustomerID string        `gorm:"type:uuid;index"`
	Amount     int64         `gorm:"not null"`
	Status     InvoiceStatus `gorm:"type:varchar(10);index"`
	Date       string        `gorm:"type:date"`
	CreatedAt  time.Time
}
