// Package seed creates demo data.
package seed

import (
	"errors"
	"fmt"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/envelope-zero/allocator/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var ErrSeed = errors.New("demo data could not be created")

type envelope struct {
	name        string
	note        string
	fillSetting budget.FillSetting
	fillAmount  int64
	capAmount   int64
	extra       bool
	def         bool
}

var demo = []envelope{
	{name: "Rent", note: "Due on the first of the month", fillSetting: budget.FillAmount, fillAmount: 950, def: true},
	{name: "Emergency Fund", fillSetting: budget.FillPercentage, fillAmount: 10},
	{name: "Groceries", fillSetting: budget.FillAmount, fillAmount: 400, capAmount: 600},
	{name: "Utilities", note: "Power, water and internet", fillSetting: budget.FillAmount, fillAmount: 180},
	{name: "Fun", fillSetting: budget.FillFill, extra: true},
}

// openingDeposit is distributed across the demo envelopes after they
// have been created.
var openingDeposit = decimal.NewFromInt(2500)

// Demo creates the demo envelopes and deposits an opening balance.
//
// Nothing is done if any envelope exists.
func Demo() error {
	var count int64
	err := models.DB.Model(&models.Envelope{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		log.Debug().Int64("envelopes", count).Msg("Skipping demo data, the database is not empty")
		return nil
	}

	ticket, err := models.UpdateAtomic("seed demo", func(r *budget.Repository) budget.Ticket {
		var t budget.Ticket
		for _, d := range demo {
			t.Merge(add(r, d))
			if t.HasErrors() {
				return t
			}
		}

		t.Merge(budget.DepositIntoAll(r, openingDeposit))
		return t
	})
	if err != nil {
		return err
	}

	if ticket.HasErrors() {
		return fmt.Errorf("%w: %w", ErrSeed, ticket.Err())
	}

	log.Info().Int("envelopes", len(demo)).Str("deposit", openingDeposit.StringFixed(2)).Msg("Demo data created")
	return nil
}

// add creates the envelope and applies its settings.
func add(r *budget.Repository, d envelope) budget.Ticket {
	e, t := budget.AddEnvelope(r, d.name, d.note)
	if e == nil {
		return t
	}

	t.Merge(budget.EditSettings(r, e, d.fillSetting, decimal.NewFromInt(d.fillAmount)))

	if d.capAmount > 0 {
		t.Merge(budget.EditCap(r, e, true, decimal.NewFromInt(d.capAmount)))
	}

	if d.extra {
		t.Merge(budget.EditExtra(r, e, true))
	}

	if d.def {
		t.Merge(budget.EditDefault(r, e, true))
	}

	return t
}
