package budget

import (
	"github.com/envelope-zero/allocator/internal/money"
	"github.com/shopspring/decimal"
)

// Validate normalizes the repository after raw mutations so that the
// invariants hold again.
//
// Priorities are renumbered to 1..N in their current order. Duplicate
// extra and default flags are cleared on all but the highest priority
// envelope. Money in the balance that is in no envelope is moved into the
// extra envelope, or the envelope with priority 1.
//
// Conditions that cannot be repaired, like negative amounts, are reported
// as errors.
func Validate(r *Repository) Ticket {
	var t Ticket

	r.sort()

	var extra, def bool
	for i, e := range r.envelopes {
		if e.Priority != i+1 {
			t.Info("Priority of %s has been changed from %d to %d", e.Name, e.Priority, i+1)
			e.Priority = i + 1
		}

		if e.Extra {
			if extra {
				e.Extra = false
				t.Info("%s is no longer the extra envelope", e.Name)
			}
			extra = true
		}

		if e.Default {
			if def {
				e.Default = false
				t.Info("%s is no longer the default envelope", e.Name)
			}
			def = true
		}

		if e.HasCap && !e.CapAmount.IsPositive() {
			e.HasCap = false
			t.Info("Envelope %s now does not have a cap", e.Name)
		}

		if !e.HasCap && !e.CapAmount.IsZero() {
			e.CapAmount = decimal.Zero
		}

		if e.FillSetting == FillFill && !e.FillAmount.IsZero() {
			e.FillAmount = decimal.Zero
		}

		if e.Amount.IsNegative() {
			t.Error("Envelope %s has a negative amount of %s", e.Name, money.Format(e.Amount))
		}
	}

	if TotalFillPercentage(r, nil).GreaterThan(hundred) {
		t.Error("Invalid envelope edit, total fill percentage cannot be greater than 100%%")
	}

	unallocated := money.Sub(r.balance, r.Allocated())
	switch {
	case unallocated.IsNegative():
		t.Error("Envelopes hold %s more than the balance", money.Format(unallocated.Neg()))

	case unallocated.IsZero():
		// Nothing to reconcile

	case r.Len() == 0:
		t.Info("%s is not in any envelope", money.Format(unallocated))

	default:
		target := r.Extra()
		if target == nil {
			target = r.ByPriority(1)
		}

		var d Distribution
		d.deposit(&t, target, unallocated)
	}

	return t
}
