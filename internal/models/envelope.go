package models

import (
	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/shopspring/decimal"
)

// Envelope is the stored representation of a budget.Envelope.
type Envelope struct {
	DefaultModel
	Name        string          `gorm:"uniqueIndex"`
	Note        string
	Priority    int             `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	FillSetting string
	FillAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	HasCap      bool
	CapAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Extra       bool            `gorm:"column:is_extra"`
	Default     bool            `gorm:"column:is_default"`
}

// Budget returns the envelope as used by the allocation engine.
func (e Envelope) Budget() budget.Envelope {
	return budget.Envelope{
		ID:          e.ID,
		Name:        e.Name,
		Note:        e.Note,
		Priority:    e.Priority,
		Amount:      e.Amount,
		FillSetting: budget.FillSetting(e.FillSetting),
		FillAmount:  e.FillAmount,
		HasCap:      e.HasCap,
		CapAmount:   e.CapAmount,
		Extra:       e.Extra,
		Default:     e.Default,
	}
}

// update sets all fields from the engine representation. The timestamps
// are kept.
func (e *Envelope) update(b *budget.Envelope) {
	e.ID = b.ID
	e.Name = b.Name
	e.Note = b.Note
	e.Priority = b.Priority
	e.Amount = b.Amount
	e.FillSetting = string(b.FillSetting)
	e.FillAmount = b.FillAmount
	e.HasCap = b.HasCap
	e.CapAmount = b.CapAmount
	e.Extra = b.Extra
	e.Default = b.Default
}
