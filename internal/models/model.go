package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EZContext string

const (
	ContextURL EZContext = "allocator-url"
)

// DefaultModel is the base model for envelopes.
//
// Envelopes are deleted permanently so that their names can be reused,
// therefore there is no DeletedAt.
type DefaultModel struct {
	ID        uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`      // UUID for the resource
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}

// BeforeCreate generates a UUID for resources that do not have one yet.
//
// The allocation engine assigns IDs when envelopes are added, so most
// resources already have one.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
