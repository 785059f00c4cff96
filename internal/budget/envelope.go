// Package budget implements envelope budgeting: a balance partitioned across
// prioritized envelopes, and the allocation engine that moves money between
// them.
//
// All operations mutate a Repository in place and report business outcomes
// through the Ticket they return. A Repository is not safe for concurrent use,
// callers must serialize access to it.
package budget

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FillSetting governs how deposits are distributed into an envelope.
type FillSetting string

const (
	FillAmount     FillSetting = "amount"     // a fixed amount per deposit
	FillFill       FillSetting = "fill"       // everything that is left, up to the cap
	FillPercentage FillSetting = "percentage" // a share of the whole deposit
)

// ParseFillSetting returns the FillSetting for s or ErrInvalidFillSetting.
func ParseFillSetting(s string) (FillSetting, error) {
	switch f := FillSetting(s); f {
	case FillAmount, FillFill, FillPercentage:
		return f, nil
	}

	return "", fmt.Errorf("%w, got '%s'", ErrInvalidFillSetting, s)
}

// mustBeValid panics for fill settings that did not go through ParseFillSetting.
func (f FillSetting) mustBeValid() {
	if _, err := ParseFillSetting(string(f)); err != nil {
		panic(fmt.Sprintf("budget: %v", err))
	}
}

// Envelope is a named budget bucket.
//
// The name is the identity of an envelope, the ID is only carried
// for the persistence layer.
type Envelope struct {
	ID          uuid.UUID
	Name        string
	Note        string
	Priority    int             // Rank in the allocation order, 1 is allocated to first
	Amount      decimal.Decimal // Money currently in the envelope
	FillSetting FillSetting
	FillAmount  decimal.Decimal // Amount for FillAmount, percent for FillPercentage, zero for FillFill
	HasCap      bool
	CapAmount   decimal.Decimal // Zero when HasCap is false
	Extra       bool            // Receives what is left after all fill settings are satisfied
	Default     bool
}

// Equal reports whether e and o are the same envelope.
func (e *Envelope) Equal(o *Envelope) bool {
	if e == nil || o == nil {
		return e == o
	}

	return e.Name == o.Name
}

// capGap returns how much can be deposited before the cap is reached.
//
// ok is false when the envelope has no cap.
func (e *Envelope) capGap() (gap decimal.Decimal, ok bool) {
	if !e.HasCap {
		return decimal.Zero, false
	}

	return e.CapAmount.Sub(e.Amount), true
}
