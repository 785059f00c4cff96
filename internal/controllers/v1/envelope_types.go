package v1

import (
	"fmt"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/envelope-zero/allocator/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// EnvelopeEditable represents all user configurable parameters
type EnvelopeEditable struct {
	Name        string          `json:"name" example:"Groceries" default:""`                                                   // Name of the envelope
	Note        string          `json:"note" example:"For the weekly shopping" default:""`                                     // Notes about the envelope
	Priority    int             `json:"priority" example:"1" binding:"min=0"`                                                  // Rank in the allocation order, 1 is filled first
	FillSetting string          `json:"fillSetting" example:"amount" binding:"omitempty,oneof=amount fill percentage"`         // How deposits are distributed into the envelope
	FillAmount  decimal.Decimal `json:"fillAmount" example:"150" swaggertype:"string"`                                          // Amount per deposit for "amount", percent of the deposit for "percentage"
	HasCap      bool            `json:"hasCap" example:"true" default:"false"`                                                 // Does the envelope have a maximum amount?
	CapAmount   decimal.Decimal `json:"capAmount" example:"600" swaggertype:"string"`                                           // Maximum amount for deposits, if hasCap is true
	Extra       bool            `json:"extra" example:"false" default:"false"`                                                 // Receives what is left after all envelopes are filled
	Default     bool            `json:"default" example:"false" default:"false"`                                               // Preselected envelope for withdrawals
}

// createFields returns the fields that are applied through the engine
// after a new envelope has been added.
func (editable EnvelopeEditable) createFields() []string {
	var fields []string
	if editable.FillSetting != "" {
		fields = append(fields, "FillSetting", "FillAmount")
	}

	if editable.HasCap {
		fields = append(fields, "HasCap", "CapAmount")
	}

	if editable.Extra {
		fields = append(fields, "Extra")
	}

	if editable.Default {
		fields = append(fields, "Default")
	}

	if editable.Priority != 0 {
		fields = append(fields, "Priority")
	}

	return fields
}

// apply runs the edit operation for each of the fields on the envelope.
//
// Edits are applied in a fixed order so that e.g. a new priority is set
// after a rename.
func (editable EnvelopeEditable) apply(r *budget.Repository, e *budget.Envelope, fields []string) budget.Ticket {
	var t budget.Ticket
	has := func(field string) bool {
		return slices.Contains(fields, field)
	}

	if has("Name") {
		t.Merge(budget.EditName(r, e, editable.Name))
	}

	if e != nil && (has("FillSetting") || has("FillAmount")) {
		setting := e.FillSetting
		if has("FillSetting") {
			parsed, err := budget.ParseFillSetting(editable.FillSetting)
			if err != nil {
				t.Error("Invalid envelope edit, %s", err)
				return t
			}
			setting = parsed
		}

		amount := e.FillAmount
		if has("FillAmount") {
			amount = editable.FillAmount
		}

		t.Merge(budget.EditSettings(r, e, setting, amount))
	}

	if e != nil && (has("HasCap") || has("CapAmount")) {
		hasCap := e.HasCap
		if has("HasCap") {
			hasCap = editable.HasCap
		}

		capAmount := e.CapAmount
		if has("CapAmount") {
			capAmount = editable.CapAmount
		}

		t.Merge(budget.EditCap(r, e, hasCap, capAmount))
	}

	if has("Extra") {
		t.Merge(budget.EditExtra(r, e, editable.Extra))
	}

	if has("Default") {
		t.Merge(budget.EditDefault(r, e, editable.Default))
	}

	if has("Priority") {
		t.Merge(budget.SetPriority(r, e, editable.Priority))
	}

	if has("Note") {
		t.Merge(budget.EditNote(r, e, editable.Note))
	}

	return t
}

type EnvelopeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // The envelope itself
}

type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	Links EnvelopeLinks `json:"links"`

	// This field is managed by the allocation engine
	Amount decimal.Decimal `json:"amount" example:"480.5" swaggertype:"string"` // Money currently in the envelope
}

func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.ContextURL))

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			Name:        model.Name,
			Note:        model.Note,
			Priority:    model.Priority,
			FillSetting: model.FillSetting,
			FillAmount:  model.FillAmount,
			HasCap:      model.HasCap,
			CapAmount:   model.CapAmount,
			Extra:       model.Extra,
			Default:     model.Default,
		},
		Amount: model.Amount,
		Links: EnvelopeLinks{
			Self: fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
		},
	}
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of Envelopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EnvelopeCreateResponse struct {
	Data  []EnvelopeResponse `json:"data"`                                                          // List of the created Envelopes or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *EnvelopeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EnvelopeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EnvelopeResponse struct {
	Data     *Envelope        `json:"data"`                                                                 // Data for the Envelope
	Messages []budget.Message `json:"messages"`                                                             // Outcome of the allocation engine operations
	Error    *string          `json:"error" example:"Invalid envelope edit, name is not unique"` // The error, if any occurred
}

type EnvelopeQueryFilter struct {
	Name        string `form:"name" filterField:"false"`   // By name, supports glob patterns like "Sav*"
	FillSetting string `form:"fillSetting"`                // By fill setting
	HasCap      bool   `form:"hasCap"`                     // Does the envelope have a cap?
	Extra       bool   `form:"extra"`                      // Is the envelope the extra envelope?
	Default     bool   `form:"default"`                    // Is the envelope the default envelope?
	Offset      uint   `form:"offset" filterField:"false"` // The offset of the first Envelope returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`  // Maximum number of Envelopes to return. Defaults to 50.
}

func (f EnvelopeQueryFilter) model(setFields []string) (models.Envelope, error) {
	if slices.Contains(setFields, "FillSetting") {
		_, err := budget.ParseFillSetting(f.FillSetting)
		if err != nil {
			return models.Envelope{}, err
		}
	}

	return models.Envelope{
		FillSetting: f.FillSetting,
		HasCap:      f.HasCap,
		Extra:       f.Extra,
		Default:     f.Default,
	}, nil
}
