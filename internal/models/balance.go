package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// balanceID is the primary key of the only Balance row.
const balanceID uint = 1

// Balance is the bank account balance the envelopes partition.
type Balance struct {
	ID        uint            `gorm:"primaryKey"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	UpdatedAt time.Time
}
