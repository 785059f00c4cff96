package models_test

import (
	"sync"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/envelope-zero/allocator/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createEnvelopes(names ...string) {
	_, err := models.Update("create", func(r *budget.Repository) budget.Ticket {
		var t budget.Ticket
		for _, name := range names {
			_, et := budget.AddEnvelope(r, name, "")
			t.Merge(et)
		}
		return t
	})
	suite.Require().Nil(err)
}

func (suite *TestSuiteStandard) load() *budget.Repository {
	r, err := models.Load(models.DB)
	suite.Require().Nil(err)
	return r
}

func (suite *TestSuiteStandard) TestUpdatePersists() {
	suite.createEnvelopes("Rent", "Savings", "Groceries")

	ticket, err := models.Update("settings", func(r *budget.Repository) budget.Ticket {
		var t budget.Ticket
		t.Merge(budget.EditSettings(r, r.ByName("Rent"), budget.FillPercentage, decimal.NewFromInt(20)))
		t.Merge(budget.EditSettings(r, r.ByName("Savings"), budget.FillPercentage, decimal.NewFromInt(30)))
		return t
	})
	suite.Require().Nil(err)
	suite.Assert().False(ticket.HasErrors(), ticket.Errors())

	ticket, err = models.Update("deposit", func(r *budget.Repository) budget.Ticket {
		return budget.DepositIntoAll(r, decimal.NewFromInt(500))
	})
	suite.Require().Nil(err)
	suite.Assert().False(ticket.HasErrors(), ticket.Errors())

	r := suite.load()
	suite.Assert().True(r.Balance().Equal(decimal.NewFromInt(500)))
	suite.Assert().True(r.ByName("Rent").Amount.Equal(decimal.NewFromInt(100)), "Rent has %s", r.ByName("Rent").Amount)
	suite.Assert().True(r.ByName("Savings").Amount.Equal(decimal.NewFromInt(150)))
	suite.Assert().True(r.ByName("Groceries").Amount.Equal(decimal.NewFromInt(250)))
	suite.Assert().Equal(budget.FillPercentage, r.ByName("Rent").FillSetting)
	suite.Assert().Nil(r.Check())
}

func (suite *TestSuiteStandard) TestUpdateKeepsPartialWithdrawal() {
	suite.createEnvelopes("A", "B")

	_, err := models.Update("deposit", func(r *budget.Repository) budget.Ticket {
		var t budget.Ticket
		t.Merge(budget.DepositIntoEnvelope(r, r.ByName("A"), decimal.NewFromInt(10)))
		t.Merge(budget.DepositIntoEnvelope(r, r.ByName("B"), decimal.NewFromInt(5)))
		return t
	})
	suite.Require().Nil(err)

	ticket, err := models.Update("withdraw", func(r *budget.Repository) budget.Ticket {
		return budget.WithdrawFromAll(r, decimal.NewFromInt(20))
	})
	suite.Require().Nil(err)
	suite.Assert().True(ticket.HasErrors())

	r := suite.load()
	suite.Assert().True(r.Balance().IsZero(), "Balance is %s", r.Balance())
	suite.Assert().True(r.ByName("A").Amount.IsZero())
	suite.Assert().True(r.ByName("B").Amount.IsZero())
}

func (suite *TestSuiteStandard) TestUpdateRollsBackBrokenInvariants() {
	suite.createEnvelopes("A")

	_, err := models.Update("broken", func(r *budget.Repository) budget.Ticket {
		r.ByName("A").Amount = decimal.NewFromInt(-5)
		_, t := budget.AddEnvelope(r, "B", "")
		return t
	})
	suite.Assert().ErrorIs(err, budget.ErrInvariant)

	r := suite.load()
	suite.Assert().Equal(1, r.Len())
	suite.Assert().True(r.ByName("A").Amount.IsZero())
}

func (suite *TestSuiteStandard) TestUpdateDeletesAndReusesNames() {
	suite.createEnvelopes("A", "B", "C")

	_, err := models.Update("delete", func(r *budget.Repository) budget.Ticket {
		t := budget.DeleteEnvelope(r, r.ByName("B"))
		_, at := budget.AddEnvelope(r, "B", "Again")
		t.Merge(at)
		return t
	})
	suite.Require().Nil(err)

	r := suite.load()
	suite.Assert().Equal(3, r.Len())
	suite.Assert().Equal(3, r.ByName("B").Priority)
	suite.Assert().Equal("Again", r.ByName("B").Note)
	suite.Assert().Equal(2, r.ByName("C").Priority)
}

func (suite *TestSuiteStandard) TestUpdatePreservesIDs() {
	suite.createEnvelopes("A")
	id := suite.load().ByName("A").ID

	_, err := models.Update("rename", func(r *budget.Repository) budget.Ticket {
		return budget.EditName(r, r.ByName("A"), "Renamed")
	})
	suite.Require().Nil(err)

	r := suite.load()
	suite.Assert().Nil(r.ByName("A"))
	suite.Assert().Equal("Renamed", r.ByID(id).Name)
}

func (suite *TestSuiteStandard) TestUpdateSerializesWriters() {
	suite.createEnvelopes("A", "B")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := models.Update("deposit", func(r *budget.Repository) budget.Ticket {
				return budget.DepositIntoAll(r, decimal.RequireFromString("1.25"))
			})
			suite.Assert().Nil(err)
		}()
	}
	wg.Wait()

	r := suite.load()
	suite.Assert().True(r.Balance().Equal(decimal.NewFromInt(25)), "Balance is %s", r.Balance())
	suite.Assert().True(r.Allocated().Equal(r.Balance()))
}

func (suite *TestSuiteStandard) TestUpdateDBClosed() {
	suite.CloseDB()

	_, err := models.Update("deposit", func(r *budget.Repository) budget.Ticket {
		return budget.DepositIntoAll(r, decimal.NewFromInt(1))
	})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestReset() {
	suite.createEnvelopes("A", "B")
	_, err := models.Update("deposit", func(r *budget.Repository) budget.Ticket {
		return budget.DepositIntoAll(r, decimal.NewFromInt(10))
	})
	suite.Require().Nil(err)

	suite.Require().Nil(models.Reset())

	r := suite.load()
	suite.Assert().Equal(0, r.Len())
	suite.Assert().True(r.Balance().IsZero())
}

func (suite *TestSuiteStandard) TestUpdateAtomicDiscardsRejected() {
	suite.createEnvelopes("Rent", "Savings")

	ticket, err := models.UpdateAtomic("edit", func(r *budget.Repository) budget.Ticket {
		var t budget.Ticket
		t.Merge(budget.EditName(r, r.ByName("Rent"), "Housing"))
		t.Merge(budget.EditName(r, r.ByName("Savings"), "Housing"))
		return t
	})
	suite.Require().Nil(err)
	suite.Assert().Contains(ticket.Errors(), "Invalid envelope edit, name is not unique")

	// The first rename is not saved either
	r := suite.load()
	suite.Assert().True(r.Has("Rent"))
	suite.Assert().False(r.Has("Housing"))

	ticket, err = models.UpdateAtomic("edit", func(r *budget.Repository) budget.Ticket {
		return budget.EditName(r, r.ByName("Rent"), "Housing")
	})
	suite.Require().Nil(err)
	suite.Assert().False(ticket.HasErrors())
	suite.Assert().True(suite.load().Has("Housing"))
}
