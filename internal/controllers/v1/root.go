package v1

import (
	"net/http"

	"github.com/envelope-zero/allocator/internal/httputil"
	"github.com/envelope-zero/allocator/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Balance      string `json:"balance" example:"https://example.com/api/v1/balance"`           // URL of the balance endpoint
	Envelopes    string `json:"envelopes" example:"https://example.com/api/v1/envelopes"`       // URL of envelope list endpoint
	Deposits     string `json:"deposits" example:"https://example.com/api/v1/deposits"`         // URL of the deposit endpoint
	Withdrawals  string `json:"withdrawals" example:"https://example.com/api/v1/withdrawals"`   // URL of the withdrawal endpoint
	Transfers    string `json:"transfers" example:"https://example.com/api/v1/transfers"`       // URL of the transfer endpoint
	Distribution string `json:"distribution" example:"https://example.com/api/v1/distribution"` // URL of the distribution preview endpoint
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)

	RegisterBalanceRoutes(r.Group("/balance"))
	RegisterEnvelopeRoutes(r.Group("/envelopes"))
	RegisterDepositRoutes(r.Group("/deposits"))
	RegisterWithdrawalRoutes(r.Group("/withdrawals"))
	RegisterTransferRoutes(r.Group("/transfers"))
	RegisterDistributionRoutes(r.Group("/distribution"))
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Balance:      url + "/v1/balance",
			Envelopes:    url + "/v1/envelopes",
			Deposits:     url + "/v1/deposits",
			Withdrawals:  url + "/v1/withdrawals",
			Transfers:    url + "/v1/transfers",
			Distribution: url + "/v1/distribution",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all envelopes and sets the balance to zero
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = models.Reset()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
