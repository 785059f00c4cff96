package v1

import (
	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DepositEditable struct {
	Amount     decimal.Decimal `json:"amount" example:"250" swaggertype:"string"`                       // Amount to deposit
	EnvelopeID *uuid.UUID      `json:"envelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // Envelope to deposit into. If not set, the amount is distributed across all envelopes.
}

type WithdrawalEditable struct {
	Amount     decimal.Decimal `json:"amount" example:"42.5" swaggertype:"string"`                      // Amount to withdraw
	EnvelopeID *uuid.UUID      `json:"envelopeId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // Envelope to withdraw from. If not set, the amount is withdrawn from all envelopes, starting with the lowest priority.
}

type TransferEditable struct {
	Amount        decimal.Decimal `json:"amount" example:"100" swaggertype:"string"`                          // Amount to transfer
	SourceID      *uuid.UUID      `json:"sourceId" example:"45b6b5b9-f746-4ae9-b77b-7688b91f8166"`      // Envelope to transfer from. If not set, this is a deposit into the destination.
	DestinationID *uuid.UUID      `json:"destinationId" example:"0f1b1b2a-cc68-4a5d-bb0c-b4a1b5d3c6c1"` // Envelope to transfer to. If not set, this is a withdrawal from the source.
}

type OperationResponse struct {
	Data     *Balance         `json:"data"`                                                              // The balance after the operation
	Messages []budget.Message `json:"messages"`                                                          // Outcome of the operation
	Error    *string          `json:"error" example:"Withdraw overdrafted account"` // The error, if any occurred
}

type DistributionResponse struct {
	Data     *budget.Distribution `json:"data"`                                                                   // How a deposit of the amount would be distributed
	Messages []budget.Message     `json:"messages"`                                                               // Outcome of the distribution
	Error    *string              `json:"error" example:"the amount is not a valid decimal number"` // The error, if any occurred
}
