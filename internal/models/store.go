package models

import (
	"errors"
	"fmt"
	"sync"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// writeLock serializes all writes to the envelopes and the balance. The
// allocation engine works on the whole repository, interleaved operations
// would observe partially applied distributions.
var writeLock sync.Mutex

// errDiscard rolls back the transaction of an UpdateAtomic.
var errDiscard = errors.New("discard changes")

// Outcomes of an Update as used in the operations metric.
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var operationCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "engine_operations_total",
		Help: "How many allocation engine operations were processed, partitioned by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// Collectors returns the Prometheus collectors of this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{operationCount}
}

// Load reads the balance and all envelopes into a repository.
func Load(db *gorm.DB) (*budget.Repository, error) {
	r, _, err := load(db)
	return r, err
}

// load returns the repository and the stored envelopes by ID.
func load(db *gorm.DB) (*budget.Repository, map[uuid.UUID]Envelope, error) {
	var balances []Balance
	err := db.Where(&Balance{ID: balanceID}).Limit(1).Find(&balances).Error
	if err != nil {
		return nil, nil, err
	}

	balance := decimal.Zero
	if len(balances) > 0 {
		balance = balances[0].Amount
	}

	var envelopes []Envelope
	err = db.Order("priority ASC").Find(&envelopes).Error
	if err != nil {
		return nil, nil, err
	}

	stored := make(map[uuid.UUID]Envelope, len(envelopes))
	b := make([]budget.Envelope, 0, len(envelopes))
	for _, e := range envelopes {
		stored[e.ID] = e
		b = append(b, e.Budget())
	}

	return budget.NewRepository(balance, b...), stored, nil
}

// save writes the repository back. Envelopes that are not in the repository
// anymore are deleted before all others are saved so that their names can
// be reused.
func save(tx *gorm.DB, r *budget.Repository, stored map[uuid.UUID]Envelope) error {
	keep := make(map[uuid.UUID]bool, r.Len())
	for _, e := range r.Envelopes() {
		keep[e.ID] = true
	}

	for id := range stored {
		if keep[id] {
			continue
		}

		err := tx.Delete(&Envelope{DefaultModel: DefaultModel{ID: id}}).Error
		if err != nil {
			return err
		}
	}

	for _, e := range r.Envelopes() {
		model, ok := stored[e.ID]
		model.update(e)

		var err error
		if ok {
			err = tx.Save(&model).Error
		} else {
			err = tx.Create(&model).Error
		}

		if err != nil {
			return err
		}
	}

	return tx.Save(&Balance{ID: balanceID, Amount: r.Balance()}).Error
}

// Update runs an allocation engine operation on the stored repository.
//
// The repository is loaded and saved in one database transaction while
// holding the write lock. After fn, budget.Validate normalizes the
// repository. The changes are saved even if the ticket contains errors,
// which keeps partial withdrawals. They are only rolled back if the
// invariants do not hold afterwards or the database fails, in that case
// the returned error is not nil.
func Update(operation string, fn func(r *budget.Repository) budget.Ticket) (budget.Ticket, error) {
	return update(operation, false, fn)
}

// UpdateAtomic is Update, but nothing is saved if the ticket contains
// errors. The returned error is nil in that case, the ticket tells
// what went wrong.
func UpdateAtomic(operation string, fn func(r *budget.Repository) budget.Ticket) (budget.Ticket, error) {
	return update(operation, true, fn)
}

func update(operation string, atomic bool, fn func(r *budget.Repository) budget.Ticket) (budget.Ticket, error) {
	writeLock.Lock()
	defer writeLock.Unlock()

	var ticket budget.Ticket
	err := DB.Transaction(func(tx *gorm.DB) error {
		r, stored, err := load(tx)
		if err != nil {
			return err
		}

		ticket = fn(r)
		if atomic && ticket.HasErrors() {
			return errDiscard
		}

		validation := budget.Validate(r)
		ticket.Merge(validation)
		if validation.HasErrors() {
			return fmt.Errorf("%w: %w", budget.ErrInvariant, validation.Err())
		}

		err = r.Check()
		if err != nil {
			return err
		}

		return save(tx, r, stored)
	})
	if errors.Is(err, errDiscard) {
		err = nil
	} else if err != nil {
		err = general(err)
	}

	logger := log.With().Str("component", "engine").Logger()
	ticket.Log(logger, operation)

	outcome := outcomeSuccess
	switch {
	case err != nil:
		outcome = outcomeFailed
		if !errors.Is(err, ErrGeneral) {
			logger.Error().Str("operation", operation).Err(err).Msg("operation rolled back")
		}
	case ticket.HasErrors():
		outcome = outcomeRejected
	}
	operationCount.WithLabelValues(operation, outcome).Inc()

	return ticket, err
}

// Reset permanently deletes all envelopes and sets the balance to zero.
func Reset() error {
	writeLock.Lock()
	defer writeLock.Unlock()

	err := DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("true").Delete(&Envelope{}).Error
		if err != nil {
			return err
		}

		return tx.Save(&Balance{ID: balanceID, Amount: decimal.Zero}).Error
	})
	if err != nil {
		return general(err)
	}

	return nil
}
