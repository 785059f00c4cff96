package budget

import (
	"strings"

	"github.com/envelope-zero/allocator/internal/money"
	"github.com/shopspring/decimal"
)

// SetPriority moves the envelope to the priority and shifts all envelopes
// between the old and the new priority by one to close the gap.
func SetPriority(r *Repository, e *Envelope, priority int) Ticket {
	var t Ticket

	if e == nil {
		t.Error("Envelope cannot be empty")
		return t
	}

	if !r.owns(e) {
		t.Error("Envelope %s does not exist", e.Name)
		return t
	}

	if priority <= 0 || priority > r.Len() {
		t.Error("Invalid envelope edit, priority outside of range")
		return t
	}

	previous := e.Priority
	if priority == previous {
		t.Info("No change to envelope priority")
		return t
	}

	for _, o := range r.envelopes {
		switch {
		case o == e:
			continue
		// Moved up, everything in between moves down
		case o.Priority >= priority && o.Priority < previous:
			o.Priority++
		// Moved down, everything in between moves up
		case o.Priority <= priority && o.Priority > previous:
			o.Priority--
		}
	}
	e.Priority = priority
	r.sort()

	t.Info("Envelope %s priority changed to %d", e.Name, priority)
	return t
}

// EditName renames the envelope. Names must be unique.
func EditName(r *Repository, e *Envelope, name string) Ticket {
	var t Ticket

	if e == nil {
		t.Error("Envelope cannot be empty")
		return t
	}

	name = strings.TrimSpace(name)
	if name == "" {
		t.Error("Envelope name cannot be changed to an empty name")
		return t
	}

	if e.Name == name {
		t.Info("No change to envelope name")
		return t
	}

	for _, o := range r.envelopes {
		if o == e {
			continue
		}

		if o.Name == name {
			t.Error("Invalid envelope edit, name is not unique")
			return t
		}
	}

	previous := e.Name
	e.Name = name

	t.Info("Envelope %s is now %s", previous, name)
	return t
}

// TotalFillPercentage returns the sum of the fill amounts of all envelopes
// with FillPercentage except exclude.
func TotalFillPercentage(r *Repository, exclude *Envelope) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range r.envelopes {
		if o.Equal(exclude) {
			continue
		}

		if o.FillSetting == FillPercentage {
			sum = money.Add(sum, o.FillAmount)
		}
	}
	return sum
}

// EditSettings changes the fill setting and fill amount of the envelope.
//
// FillFill ignores the amount. For FillPercentage, the percentages of all
// envelopes must not exceed 100.
func EditSettings(r *Repository, e *Envelope, setting FillSetting, amount decimal.Decimal) Ticket {
	var t Ticket

	if e == nil {
		t.Error("Envelope cannot be empty")
		return t
	}

	setting.mustBeValid()
	if setting == FillFill {
		amount = decimal.Zero
	}

	if e.FillSetting == setting && e.FillAmount.Equal(amount) {
		t.Info("No change to Envelope fill settings")
		return t
	}

	if amount.IsNegative() {
		t.Error("Invalid envelope edit, fill amount cannot be less than 0")
		return t
	}

	switch setting {
	case FillAmount:
		e.FillSetting = setting
		e.FillAmount = amount
		t.Info("Fill setting has been changed to amount for %s", e.Name)
		t.Info("Fill amount has been set to %s for %s", money.Format(amount), e.Name)

	case FillFill:
		e.FillSetting = setting
		e.FillAmount = decimal.Zero
		t.Info("Fill setting has been changed to fill for %s", e.Name)

	case FillPercentage:
		available := money.Sub(hundred, TotalFillPercentage(r, e))
		if amount.GreaterThan(available) {
			t.Error("Invalid envelope edit, total fill percentage cannot be greater than 100%%")
			return t
		}

		e.FillSetting = setting
		e.FillAmount = amount
		t.Info("Fill setting has been changed to percentage for %s", e.Name)
		t.Info("Fill percentage has been set to %s%% for %s", amount, e.Name)
	}

	return t
}

// EditCap enables or disables the cap of the envelope. Disabling the cap
// resets the cap amount to zero.
func EditCap(r *Repository, e *Envelope, hasCap bool, capAmount decimal.Decimal) Ticket {
	var t Ticket

	if e == nil {
		t.Error("Envelope cannot be empty")
		return t
	}

	if (e.HasCap == hasCap && e.CapAmount.Equal(capAmount)) || (!e.HasCap && !hasCap) {
		t.Info("No change to envelope cap settings")
		return t
	}

	if hasCap && !capAmount.IsPositive() {
		t.Error("Invalid envelope edit, cap amount cannot be less than or equal to 0")
		return t
	}

	e.HasCap = hasCap
	if hasCap {
		e.CapAmount = capAmount
		t.Info("Envelope %s now has a cap of %s", e.Name, money.Format(capAmount))
	} else {
		e.CapAmount = decimal.Zero
		t.Info("Envelope %s now does not have a cap", e.Name)
	}

	return t
}

// EditExtra marks or unmarks the envelope as the extra envelope. Marking
// an envelope unmarks all others.
func EditExtra(r *Repository, e *Envelope, extra bool) Ticket {
	var t Ticket

	if e == nil {
		t.Error("Envelope cannot be empty")
		return t
	}

	if e.Extra == extra {
		t.Info("%s envelope's extra did not change", e.Name)
		return t
	}

	if !extra {
		e.Extra = false
		t.Info("%s is no longer the extra envelope", e.Name)
		return t
	}

	for _, o := range r.envelopes {
		o.Extra = o == e
	}
	// e might not be stored in r
	e.Extra = true

	t.Info("%s is now the extra envelope", e.Name)
	return t
}

// EditDefault marks or unmarks the envelope as the default envelope.
// Marking an envelope unmarks all others.
func EditDefault(r *Repository, e *Envelope, def bool) Ticket {
	var t Ticket

	if e == nil {
		t.Error("Envelope cannot be empty")
		return t
	}

	if e.Default == def {
		t.Info("%s envelope's default did not change", e.Name)
		return t
	}

	if !def {
		e.Default = false
		t.Info("%s is no longer the default envelope", e.Name)
		return t
	}

	for _, o := range r.envelopes {
		o.Default = o == e
	}
	e.Default = true

	t.Info("%s is now the default envelope", e.Name)
	return t
}

// EditNote replaces the note of the envelope.
func EditNote(r *Repository, e *Envelope, note string) Ticket {
	var t Ticket

	if e == nil {
		t.Error("Envelope cannot be empty")
		return t
	}

	if !r.owns(e) {
		t.Error("Envelope %s does not exist", e.Name)
		return t
	}

	note = strings.TrimSpace(note)
	if note == e.Note {
		t.Info("No change to envelope note")
		return t
	}

	e.Note = note
	t.Info("Note of envelope %s has been changed", e.Name)
	return t
}
