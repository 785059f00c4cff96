package budget_test

import (
	"fmt"
	"testing"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d parses a decimal and panics on invalid input.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newRepository creates a repository whose balance is the sum of the
// envelope amounts. Envelopes without a priority get their position,
// envelopes without a fill setting get FillFill.
func newRepository(envelopes ...budget.Envelope) *budget.Repository {
	balance := decimal.Zero
	for i := range envelopes {
		if envelopes[i].Priority == 0 {
			envelopes[i].Priority = i + 1
		}

		if envelopes[i].FillSetting == "" {
			envelopes[i].FillSetting = budget.FillFill
		}

		balance = balance.Add(envelopes[i].Amount)
	}

	return budget.NewRepository(balance, envelopes...)
}

// envelope returns the envelope with the name and fails the test if it does not exist.
func envelope(t *testing.T, r *budget.Repository, name string) *budget.Envelope {
	e := r.ByName(name)
	require.NotNil(t, e, "Envelope %s does not exist", name)
	return e
}

// assertAmount checks the amount of the named envelope.
func assertAmount(t *testing.T, r *budget.Repository, name, amount string) {
	e := envelope(t, r, name)
	assert.True(t, e.Amount.Equal(d(amount)), "Amount of %s is wrong: should be %s, but is %s", name, amount, e.Amount)
}

// assertBalance checks the balance of the repository.
func assertBalance(t *testing.T, r *budget.Repository, amount string) {
	assert.True(t, r.Balance().Equal(d(amount)), "Balance is wrong: should be %s, but is %s", amount, r.Balance())
}

// assertNoErrors fails the test if the ticket contains errors.
func assertNoErrors(t *testing.T, ticket budget.Ticket) {
	assert.False(t, ticket.HasErrors(), "Ticket has errors: %v", ticket.Errors())
}

// assertError checks that the ticket contains the error message.
func assertError(t *testing.T, ticket budget.Ticket, text string) {
	assert.Contains(t, ticket.Errors(), text, "Ticket does not contain the expected error. Messages: %v", ticket.Messages)
}

// snapshot returns a copy of all envelopes for comparisons after no-op operations.
func snapshot(r *budget.Repository) []budget.Envelope {
	var envelopes []budget.Envelope
	for _, e := range r.Envelopes() {
		envelopes = append(envelopes, *e)
	}
	return envelopes
}

// priorities returns the set of priorities in the repository.
func priorities(r *budget.Repository) map[int]string {
	p := make(map[int]string)
	for _, e := range r.Envelopes() {
		p[e.Priority] = e.Name
	}
	return p
}

// assertDensePriorities checks that the priorities are exactly 1..N.
func assertDensePriorities(t *testing.T, r *budget.Repository) {
	p := priorities(r)
	assert.Len(t, p, r.Len(), "Priorities are not unique: %v", p)
	for i := 1; i <= r.Len(); i++ {
		assert.Contains(t, p, i, fmt.Sprintf("Priority %d is missing: %v", i, p))
	}
}
