package budget

import (
	"fmt"

	"github.com/envelope-zero/allocator/internal/money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Delta is the amount deposited into an envelope in one step of a distribution.
type Delta struct {
	Envelope string          `json:"envelope" example:"Groceries"`
	Amount   decimal.Decimal `json:"amount" example:"100"`
}

// Distribution is the result of distributing a deposit across envelopes.
type Distribution struct {
	Deltas   []Delta         `json:"deltas"`
	Leftover decimal.Decimal `json:"leftover" example:"0"` // Only non-zero if there is no envelope at all
}

// Total returns the sum of all deltas.
func (d Distribution) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, delta := range d.Deltas {
		sum = money.Add(sum, delta.Amount)
	}
	return sum
}

// For returns the sum of all deltas for the named envelope.
func (d Distribution) For(name string) decimal.Decimal {
	sum := decimal.Zero
	for _, delta := range d.Deltas {
		if delta.Envelope == name {
			sum = money.Add(sum, delta.Amount)
		}
	}
	return sum
}

// deposit adds amount to the envelope and records it.
func (d *Distribution) deposit(t *Ticket, e *Envelope, amount decimal.Decimal) {
	e.Amount = money.Add(e.Amount, amount)
	d.Deltas = append(d.Deltas, Delta{Envelope: e.Name, Amount: amount})
	t.Info("Envelope %s has been deposited %s", e.Name, money.Format(amount))
}

// Distribute distributes amount across the envelopes of r without
// changing the balance.
//
// Envelopes with FillPercentage receive their share of the full amount
// first, in priority order. Then envelopes with FillAmount and FillFill
// are filled in priority order, respecting their caps. Whatever is left
// goes to the extra envelope, or to the envelope with priority 1 if no
// envelope is marked as extra.
//
// Caps are not checked for FillPercentage envelopes.
func Distribute(r *Repository, amount decimal.Decimal) (Distribution, Ticket) {
	var t Ticket
	d := Distribution{Leftover: decimal.Zero}

	if !amount.IsPositive() {
		d.Leftover = amount
		return d, t
	}

	envelopes := r.Envelopes()
	remaining := amount

	for _, e := range envelopes {
		if e.FillSetting != FillPercentage {
			continue
		}

		// The percentages sum up to 100 at most, this only
		// guards against inconsistent data
		share := money.Min(money.Percent(amount, e.FillAmount), remaining)
		if share.IsPositive() {
			d.deposit(&t, e, share)
			remaining = money.Sub(remaining, share)
		}

		if remaining.IsZero() {
			return d, t
		}
	}

	for _, e := range envelopes {
		var target decimal.Decimal

		switch e.FillSetting {
		case FillPercentage:
			continue
		case FillFill:
			target = remaining
		case FillAmount:
			target = money.Min(e.FillAmount, remaining)
		default:
			panic(fmt.Sprintf("budget: envelope %s has an invalid fill setting '%s'", e.Name, e.FillSetting))
		}

		if gap, capped := e.capGap(); capped {
			// Skip full envelopes
			if !gap.IsPositive() {
				continue
			}
			target = money.Min(target, gap)
		}

		if !target.IsPositive() {
			continue
		}

		d.deposit(&t, e, target)
		remaining = money.Sub(remaining, target)

		if remaining.IsZero() {
			return d, t
		}
	}

	if extra := r.Extra(); extra != nil {
		d.deposit(&t, extra, remaining)
		return d, t
	}

	if first := r.ByPriority(1); first != nil {
		d.deposit(&t, first, remaining)
		t.Info("No envelope is marked as extra, %s has been deposited into %s", money.Format(remaining), first.Name)
		return d, t
	}

	d.Leftover = remaining
	t.Error("%s is unaccounted for. No envelopes exist to be deposited into", money.Format(remaining))
	return d, t
}

// DepositIntoAll deposits amount into the bank account and distributes it
// across all envelopes.
func DepositIntoAll(r *Repository, amount decimal.Decimal) Ticket {
	var t Ticket

	if amount.IsNegative() {
		t.Error("Cannot deposit negative amount")
		return t
	}

	if amount.IsZero() {
		t.Info("Cannot deposit $0")
		return t
	}

	r.balance = money.Add(r.balance, amount)

	_, dt := Distribute(r, amount)
	t.Merge(dt)

	if !dt.HasErrors() {
		t.Info("%s has been deposited", money.Format(amount))
	}

	return t
}

// DepositIntoEnvelope deposits amount into the bank account and directly into
// the envelope, ignoring its cap. A nil envelope deposits into all envelopes.
func DepositIntoEnvelope(r *Repository, e *Envelope, amount decimal.Decimal) Ticket {
	if e == nil {
		return DepositIntoAll(r, amount)
	}

	var t Ticket

	if amount.IsZero() {
		t.Info("Cannot deposit $0 into %s", e.Name)
		return t
	}

	if amount.IsNegative() {
		t.Error("Cannot deposit negative amount")
		return t
	}

	r.balance = money.Add(r.balance, amount)
	e.Amount = money.Add(e.Amount, amount)
	t.Info("Envelope %s has been deposited %s", e.Name, money.Format(amount))

	return t
}
