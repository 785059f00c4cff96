package budget

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/envelope-zero/allocator/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Repository is the ordered set of envelopes together with the balance
// of the bank account they partition.
type Repository struct {
	balance   decimal.Decimal
	envelopes []*Envelope // always sorted by priority
}

// NewRepository creates a repository from a balance and envelopes as
// they were stored. The envelopes are copied.
func NewRepository(balance decimal.Decimal, envelopes ...Envelope) *Repository {
	r := &Repository{
		balance:   balance,
		envelopes: make([]*Envelope, 0, len(envelopes)),
	}

	for _, e := range envelopes {
		r.envelopes = append(r.envelopes, &e)
	}
	r.sort()

	return r
}

// sort orders the envelopes by priority. Ties, which only exist before
// Validate ran on inconsistent data, are broken by name.
func (r *Repository) sort() {
	slices.SortStableFunc(r.envelopes, func(a, b *Envelope) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// Balance returns the bank account balance.
func (r *Repository) Balance() decimal.Decimal {
	return r.balance
}

// Len returns the number of envelopes.
func (r *Repository) Len() int {
	return len(r.envelopes)
}

// Envelopes returns all envelopes, ordered by priority.
func (r *Repository) Envelopes() []*Envelope {
	return slices.Clone(r.envelopes)
}

// ByPriority returns the envelope with the priority or nil.
func (r *Repository) ByPriority(priority int) *Envelope {
	for _, e := range r.envelopes {
		if e.Priority == priority {
			return e
		}
	}
	return nil
}

// ByName returns the envelope with the exact name or nil.
func (r *Repository) ByName(name string) *Envelope {
	for _, e := range r.envelopes {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// ByID returns the envelope with the ID or nil.
func (r *Repository) ByID(id uuid.UUID) *Envelope {
	for _, e := range r.envelopes {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Has reports whether an envelope with the name exists.
func (r *Repository) Has(name string) bool {
	return r.ByName(name) != nil
}

// Extra returns the envelope marked as extra or nil.
func (r *Repository) Extra() *Envelope {
	for _, e := range r.envelopes {
		if e.Extra {
			return e
		}
	}
	return nil
}

// Default returns the envelope marked as default or nil.
func (r *Repository) Default() *Envelope {
	for _, e := range r.envelopes {
		if e.Default {
			return e
		}
	}
	return nil
}

// Allocated returns the sum of all envelope amounts.
func (r *Repository) Allocated() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range r.envelopes {
		sum = money.Add(sum, e.Amount)
	}
	return sum
}

// owns reports whether e is the envelope stored in r, not a copy.
func (r *Repository) owns(e *Envelope) bool {
	return e != nil && r.ByName(e.Name) == e
}

// AddEnvelope creates an empty envelope with the lowest priority.
//
// New envelopes use FillFill without a cap. Use the Edit operations to
// configure them.
func AddEnvelope(r *Repository, name, note string) (*Envelope, Ticket) {
	var t Ticket

	name = strings.TrimSpace(name)
	if name == "" {
		t.Error("Invalid envelope, name cannot be empty")
		return nil, t
	}

	if r.Has(name) {
		t.Error("Invalid envelope, name is not unique")
		return nil, t
	}

	e := &Envelope{
		ID:          uuid.New(),
		Name:        name,
		Note:        strings.TrimSpace(note),
		Priority:    len(r.envelopes) + 1,
		FillSetting: FillFill,
	}
	r.envelopes = append(r.envelopes, e)

	t.Info("Envelope %s has been created with priority %d", e.Name, e.Priority)
	return e, t
}

// DeleteEnvelope removes the envelope and closes the gap in the priorities.
//
// Money in the envelope stays in the balance, Validate moves it into
// another envelope.
func DeleteEnvelope(r *Repository, e *Envelope) Ticket {
	var t Ticket

	if !r.owns(e) {
		t.Error("Envelope does not exist")
		return t
	}

	r.envelopes = slices.DeleteFunc(r.envelopes, func(o *Envelope) bool {
		return o == e
	})

	for _, o := range r.envelopes {
		if o.Priority > e.Priority {
			o.Priority--
		}
	}

	t.Info("Envelope %s has been deleted", e.Name)
	if e.Amount.IsPositive() {
		t.Info("%s from %s is no longer in an envelope", money.Format(e.Amount), e.Name)
	}

	return t
}

// Check verifies the structural invariants and returns an error wrapping
// ErrInvariant for the first one that does not hold.
func (r *Repository) Check() error {
	if r.balance.IsNegative() {
		return fmt.Errorf("%w: the balance is negative", ErrInvariant)
	}

	var extra, def int
	percentage := decimal.Zero
	names := make(map[string]bool, len(r.envelopes))

	for i, e := range r.envelopes {
		if e.Priority != i+1 {
			return fmt.Errorf("%w: envelope %s has priority %d, expected %d", ErrInvariant, e.Name, e.Priority, i+1)
		}

		if names[e.Name] {
			return fmt.Errorf("%w: envelope name %s is not unique", ErrInvariant, e.Name)
		}
		names[e.Name] = true

		if e.Amount.IsNegative() {
			return fmt.Errorf("%w: envelope %s has a negative amount", ErrInvariant, e.Name)
		}

		if e.HasCap && !e.CapAmount.IsPositive() {
			return fmt.Errorf("%w: envelope %s has a cap that is not positive", ErrInvariant, e.Name)
		}

		if e.Extra {
			extra++
		}

		if e.Default {
			def++
		}

		if e.FillSetting == FillPercentage {
			percentage = money.Add(percentage, e.FillAmount)
		}
	}

	if extra > 1 {
		return fmt.Errorf("%w: %d envelopes are marked as extra", ErrInvariant, extra)
	}

	if def > 1 {
		return fmt.Errorf("%w: %d envelopes are marked as default", ErrInvariant, def)
	}

	if percentage.GreaterThan(hundred) {
		return fmt.Errorf("%w: the fill percentages sum up to %s%%", ErrInvariant, percentage)
	}

	return nil
}
