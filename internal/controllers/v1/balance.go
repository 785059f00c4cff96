package v1

import (
	"net/http"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/envelope-zero/allocator/internal/httputil"
	"github.com/envelope-zero/allocator/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BalanceLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/balance"`           // The balance itself
	Envelopes string `json:"envelopes" example:"https://example.com/api/v1/envelopes"` // The envelopes partitioning the balance
}

type Balance struct {
	Amount      decimal.Decimal `json:"amount" example:"1250.5"`    // Money in the bank account
	Allocated   decimal.Decimal `json:"allocated" example:"1250.5"` // Sum of all envelope amounts
	Unallocated decimal.Decimal `json:"unallocated" example:"0"`    // Money not in any envelope. Only non-zero if there are no envelopes
	Links       BalanceLinks    `json:"links"`
}

func newBalance(c *gin.Context, r *budget.Repository) Balance {
	url := c.GetString(string(models.ContextURL))

	return Balance{
		Amount:      r.Balance(),
		Allocated:   r.Allocated(),
		Unallocated: r.Balance().Sub(r.Allocated()),
		Links: BalanceLinks{
			Self:      url + "/v1/balance",
			Envelopes: url + "/v1/envelopes",
		},
	}
}

type BalanceResponse struct {
	Data  *Balance `json:"data"`                                                                    // Data for the balance
	Error *string  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterBalanceRoutes registers the routes for the balance with
// the RouterGroup that is passed.
func RegisterBalanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBalance)
	r.GET("", GetBalance)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Balance
// @Success		204
// @Router			/v1/balance [options]
func OptionsBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get balance
// @Description	Returns the balance and how much of it is allocated to envelopes
// @Tags			Balance
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		500	{object}	BalanceResponse
// @Router			/v1/balance [get]
func GetBalance(c *gin.Context) {
	r, err := models.Load(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &s,
		})
		return
	}

	data := newBalance(c, r)
	c.JSON(http.StatusOK, BalanceResponse{Data: &data})
}
