package budget

import (
	"github.com/envelope-zero/allocator/internal/money"
	"github.com/shopspring/decimal"
)

// withdraw takes amount out of the envelope and the balance.
func withdraw(t *Ticket, r *Repository, e *Envelope, amount decimal.Decimal) {
	e.Amount = money.Sub(e.Amount, amount)
	r.balance = money.Sub(r.balance, amount)
	t.Info("%s has been withdrawn from Envelope %s", money.Format(amount), e.Name)
}

// withdrawUpTo withdraws as much of amount as the envelope holds and
// returns what could not be withdrawn.
func withdrawUpTo(t *Ticket, r *Repository, e *Envelope, amount decimal.Decimal) decimal.Decimal {
	if e.Amount.IsZero() {
		t.Info("%s is already empty, cannot be withdrawn from", e.Name)
		return amount
	}

	take := money.Min(e.Amount, amount)
	withdraw(t, r, e, take)

	return money.Sub(amount, take)
}

// WithdrawFromSingleEnvelope withdraws the full amount from the envelope or
// nothing at all.
func WithdrawFromSingleEnvelope(r *Repository, e *Envelope, amount decimal.Decimal) Ticket {
	var t Ticket

	if e == nil {
		t.Info("Cannot withdraw from envelope, envelope does not exist")
		return t
	}

	if amount.IsNegative() {
		t.Error("Cannot withdraw negative amount")
		return t
	}

	if amount.IsZero() {
		t.Info("Cannot withdraw $0 from %s", e.Name)
		return t
	}

	if e.Amount.IsZero() {
		t.Info("%s is already empty, cannot be withdrawn from", e.Name)
		return t
	}

	if e.Amount.LessThan(amount) {
		t.Error("Invalid envelope transfer, insufficient funds in %s", e.Name)
		return t
	}

	withdraw(&t, r, e, amount)
	return t
}

// WithdrawFromAll withdraws amount from the envelopes, starting with the
// lowest priority envelope.
//
// If the envelopes do not hold enough money, everything is withdrawn and
// an error is reported. The withdrawals already made are kept.
func WithdrawFromAll(r *Repository, amount decimal.Decimal) Ticket {
	var t Ticket

	if amount.IsNegative() {
		t.Error("Cannot withdraw negative amount")
		return t
	}

	if amount.IsZero() {
		t.Info("Cannot withdraw $0")
		return t
	}

	remaining := amount
	envelopes := r.Envelopes()
	for i := len(envelopes) - 1; i >= 0 && remaining.IsPositive(); i-- {
		remaining = withdrawUpTo(&t, r, envelopes[i], remaining)
	}

	if remaining.IsZero() {
		t.Info("Withdraw was successful")
	} else {
		t.Error("Withdraw overdrafted account, %s could not be withdrawn", money.Format(remaining))
	}

	return t
}
