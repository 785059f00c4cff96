package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/envelope-zero/allocator/internal/models"
	ez_uuid "github.com/envelope-zero/allocator/internal/uuid"
)

var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"` // The error
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// status returns the HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral), errors.Is(err, budget.ErrInvariant):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// ticketError returns the error messages of the ticket joined into one
// string, or nil if there are none.
func ticketError(t budget.Ticket) *string {
	if !t.HasErrors() {
		return nil
	}

	s := strings.Join(t.Errors(), "; ")
	return &s
}
