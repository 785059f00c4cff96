package v1

import (
	"net/http"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/envelope-zero/allocator/internal/httputil"
	"github.com/envelope-zero/allocator/internal/models"
	"github.com/envelope-zero/allocator/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterDepositRoutes registers the routes for deposits with
// the RouterGroup that is passed.
func RegisterDepositRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsOperation)
	r.POST("", CreateDeposit)
}

// RegisterWithdrawalRoutes registers the routes for withdrawals with
// the RouterGroup that is passed.
func RegisterWithdrawalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsOperation)
	r.POST("", CreateWithdrawal)
}

// RegisterTransferRoutes registers the routes for transfers with
// the RouterGroup that is passed.
func RegisterTransferRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsOperation)
	r.POST("", CreateTransfer)
}

// RegisterDistributionRoutes registers the routes for the distribution
// preview with the RouterGroup that is passed.
func RegisterDistributionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDistribution)
	r.GET("", GetDistribution)
}

// envelopesExist checks that all envelopes with the given IDs exist.
// Nil IDs are skipped.
func envelopesExist(ids ...*uuid.UUID) error {
	for _, id := range ids {
		if id == nil {
			continue
		}

		err := models.DB.First(&models.Envelope{}, *id).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// lookup returns the envelope for the ID. A nil ID returns a nil envelope.
func lookup(t *budget.Ticket, r *budget.Repository, id *uuid.UUID) *budget.Envelope {
	if id == nil {
		return nil
	}

	e := r.ByID(*id)
	if e == nil {
		t.Error("Envelope %s does not exist", id)
	}
	return e
}

// operate runs the operation and writes the response.
func operate(c *gin.Context, operation string, fn func(r *budget.Repository) budget.Ticket) {
	ticket, err := models.Update(operation, fn)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OperationResponse{
			Messages: ticket.Messages,
			Error:    &s,
		})
		return
	}

	if ticket.HasErrors() {
		c.JSON(http.StatusBadRequest, OperationResponse{
			Messages: ticket.Messages,
			Error:    ticketError(ticket),
		})
		return
	}

	r, err := models.Load(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OperationResponse{
			Messages: ticket.Messages,
			Error:    &s,
		})
		return
	}

	data := newBalance(c, r)
	c.JSON(http.StatusOK, OperationResponse{
		Data:     &data,
		Messages: ticket.Messages,
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Operations
// @Success		204
// @Router			/v1/deposits [options]
// @Router			/v1/withdrawals [options]
// @Router			/v1/transfers [options]
func OptionsOperation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Deposit
// @Description	Deposits money into an envelope. If no envelope is specified, the amount is distributed across all envelopes according to their fill settings. In both cases, the balance increases by the amount.
// @Tags			Operations
// @Accept			json
// @Produce		json
// @Success		200		{object}	OperationResponse
// @Failure		400		{object}	OperationResponse
// @Failure		404		{object}	OperationResponse
// @Failure		500		{object}	OperationResponse
// @Param			deposit	body		DepositEditable	true	"Deposit"
// @Router			/v1/deposits [post]
func CreateDeposit(c *gin.Context) {
	var data DepositEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OperationResponse{
			Error: &s,
		})
		return
	}

	err = envelopesExist(data.EnvelopeID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OperationResponse{
			Error: &s,
		})
		return
	}

	operate(c, "deposit", func(r *budget.Repository) budget.Ticket {
		var t budget.Ticket
		e := lookup(&t, r, data.EnvelopeID)
		if t.HasErrors() {
			return t
		}

		return budget.DepositIntoEnvelope(r, e, data.Amount)
	})
}

// @Summary		Withdraw
// @Description	Withdraws money from an envelope. If no envelope is specified, the amount is withdrawn from all envelopes, starting with the lowest priority. In both cases, the balance decreases by the withdrawn amount.
// @Tags			Operations
// @Accept			json
// @Produce		json
// @Success		200			{object}	OperationResponse
// @Failure		400			{object}	OperationResponse
// @Failure		404			{object}	OperationResponse
// @Failure		500			{object}	OperationResponse
// @Param			withdrawal	body		WithdrawalEditable	true	"Withdrawal"
// @Router			/v1/withdrawals [post]
func CreateWithdrawal(c *gin.Context) {
	var data WithdrawalEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OperationResponse{
			Error: &s,
		})
		return
	}

	err = envelopesExist(data.EnvelopeID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OperationResponse{
			Error: &s,
		})
		return
	}

	operate(c, "withdraw", func(r *budget.Repository) budget.Ticket {
		if data.EnvelopeID == nil {
			return budget.WithdrawFromAll(r, data.Amount)
		}

		var t budget.Ticket
		e := lookup(&t, r, data.EnvelopeID)
		if t.HasErrors() {
			return t
		}

		return budget.WithdrawFromSingleEnvelope(r, e, data.Amount)
	})
}

// @Summary		Transfer
// @Description	Transfers money between envelopes. The cap of the destination envelope is not checked.
// @Tags			Operations
// @Accept			json
// @Produce		json
// @Success		200			{object}	OperationResponse
// @Failure		400			{object}	OperationResponse
// @Failure		404			{object}	OperationResponse
// @Failure		500			{object}	OperationResponse
// @Param			transfer	body		TransferEditable	true	"Transfer"
// @Router			/v1/transfers [post]
func CreateTransfer(c *gin.Context) {
	var data TransferEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OperationResponse{
			Error: &s,
		})
		return
	}

	err = envelopesExist(data.SourceID, data.DestinationID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OperationResponse{
			Error: &s,
		})
		return
	}

	operate(c, "transfer", func(r *budget.Repository) budget.Ticket {
		var t budget.Ticket
		source := lookup(&t, r, data.SourceID)
		destination := lookup(&t, r, data.DestinationID)
		if t.HasErrors() {
			return t
		}

		return budget.Transfer(r, source, destination, data.Amount)
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Operations
// @Success		204
// @Router			/v1/distribution [options]
func OptionsDistribution(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Preview a deposit
// @Description	Returns how a deposit of the amount would be distributed across all envelopes. Nothing is changed.
// @Tags			Operations
// @Produce		json
// @Success		200		{object}	DistributionResponse
// @Failure		400		{object}	DistributionResponse
// @Failure		500		{object}	DistributionResponse
// @Param			amount	query		string	true	"The amount to distribute"
// @Router			/v1/distribution [get]
func GetDistribution(c *gin.Context) {
	amount, err := money.Parse(c.Query("amount"))
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DistributionResponse{
			Error: &s,
		})
		return
	}

	r, err := models.Load(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DistributionResponse{
			Error: &s,
		})
		return
	}

	distribution, ticket := budget.Distribute(r, amount)
	c.JSON(http.StatusOK, DistributionResponse{
		Data:     &distribution,
		Messages: ticket.Messages,
	})
}
