package budget

import (
	"github.com/envelope-zero/allocator/internal/money"
	"github.com/shopspring/decimal"
)

// Transfer moves amount from source to destination.
//
// A nil source deposits into the destination, a nil destination withdraws
// from the source. The cap of the destination is not checked.
func Transfer(r *Repository, source, destination *Envelope, amount decimal.Decimal) Ticket {
	var t Ticket

	if !amount.IsPositive() {
		t.Error("Cannot transfer an amount less than or equal to 0")
		return t
	}

	if source == nil && destination == nil {
		t.Error("Source and destination cannot both be empty")
		return t
	}

	if source == nil {
		return DepositIntoEnvelope(r, destination, amount)
	}

	if destination == nil {
		return WithdrawFromSingleEnvelope(r, source, amount)
	}

	if source.Equal(destination) {
		t.Error("Cannot transfer to the same envelope")
		return t
	}

	if source.Amount.LessThan(amount) {
		t.Error("Invalid envelope transfer, insufficient funds: amount cannot be more than envelope amount")
		return t
	}

	source.Amount = money.Sub(source.Amount, amount)
	destination.Amount = money.Add(destination.Amount, amount)

	t.Info("%s has been transferred from %s to %s", money.Format(amount), source.Name, destination.Name)
	return t
}
