package v1

import (
	"net/http"

	"github.com/envelope-zero/allocator/internal/budget"
	"github.com/envelope-zero/allocator/internal/httputil"
	"github.com/envelope-zero/allocator/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopeList)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelopes)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.PATCH("/:id", UpdateEnvelope)
		r.DELETE("/:id", DeleteEnvelope)
	}
}

// envelopeFromURI binds the ID from the URI and reads the envelope.
func envelopeFromURI(c *gin.Context) (models.Envelope, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Envelope{}, httputil.ErrInvalidUUID
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, uri.ID.UUID).Error
	if err != nil {
		return models.Envelope{}, err
	}

	return envelope, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes [options]
func OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
	_, err := envelopeFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create envelopes
// @Description	Creates new envelopes. Each envelope is added with the lowest priority, then its settings are applied.
// @Tags			Envelopes
// @Produce		json
// @Success		201			{object}	EnvelopeCreateResponse
// @Failure		400			{object}	EnvelopeCreateResponse
// @Failure		500			{object}	EnvelopeCreateResponse
// @Param			envelopes	body		[]EnvelopeEditable	true	"Envelopes"
// @Router			/v1/envelopes [post]
func CreateEnvelopes(c *gin.Context) {
	var editables []EnvelopeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EnvelopeCreateResponse{}

	for _, editable := range editables {
		var id uuid.UUID
		ticket, err := models.UpdateAtomic("create envelope", func(r *budget.Repository) budget.Ticket {
			e, t := budget.AddEnvelope(r, editable.Name, editable.Note)
			if e == nil {
				return t
			}

			id = e.ID
			t.Merge(editable.apply(r, e, editable.createFields()))
			return t
		})
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		if ticket.HasErrors() {
			r.Data = append(r.Data, EnvelopeResponse{Messages: ticket.Messages, Error: ticketError(ticket)})
			status = max(status, http.StatusBadRequest)
			continue
		}

		var envelope models.Envelope
		err = models.DB.First(&envelope, id).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newEnvelope(c, envelope)
		r.Data = append(r.Data, EnvelopeResponse{Data: &data, Messages: ticket.Messages})
	}

	c.JSON(status, r)
}

// @Summary		Get envelopes
// @Description	Returns a list of envelopes, ordered by priority
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		400	{object}	EnvelopeListResponse
// @Failure		500	{object}	EnvelopeListResponse
// @Router			/v1/envelopes [get]
// @Param			name		query	string	false	"Filter by name, supports glob patterns"
// @Param			fillSetting	query	string	false	"Filter by fill setting"
// @Param			hasCap		query	bool	false	"Does the envelope have a cap?"
// @Param			extra		query	bool	false	"Is the envelope the extra envelope?"
// @Param			default		query	bool	false	"Is the envelope the default envelope?"
// @Param			offset		query	uint	false	"The offset of the first Envelope returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Envelopes to return. Defaults to 50."
func GetEnvelopes(c *gin.Context) {
	var filter EnvelopeQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, EnvelopeListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model(setFields)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &s,
		})
		return
	}

	var envelopes []models.Envelope
	err = models.DB.
		Order("priority ASC").
		Where(&filterModel, queryFields...).
		Find(&envelopes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &s,
		})
		return
	}

	// Names are matched with glob patterns, which SQL cannot do
	if slices.Contains(setFields, "Name") {
		envelopes = slices.DeleteFunc(envelopes, func(e models.Envelope) bool {
			return !glob.Glob(filter.Name, e.Name)
		})
	}
	total := len(envelopes)

	// Default to 50 Envelopes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	offset := min(int(filter.Offset), total)
	end := total
	if limit >= 0 {
		end = min(offset+limit, total)
	}

	data := make([]Envelope, 0)
	for _, envelope := range envelopes[offset:end] {
		data = append(data, newEnvelope(c, envelope))
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeResponse
// @Failure		400	{object}	EnvelopeResponse
// @Failure		404	{object}	EnvelopeResponse
// @Failure		500	{object}	EnvelopeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	envelope, err := envelopeFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// @Summary		Update envelope
// @Description	Update an existing envelope. Only values to be updated need to be specified. Either all changes are applied or none.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200			{object}	EnvelopeResponse
// @Failure		400			{object}	EnvelopeResponse
// @Failure		404			{object}	EnvelopeResponse
// @Failure		500			{object}	EnvelopeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes/{id} [patch]
func UpdateEnvelope(c *gin.Context) {
	envelope, err := envelopeFromURI(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EnvelopeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	var data EnvelopeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	ticket, err := models.UpdateAtomic("update envelope", func(r *budget.Repository) budget.Ticket {
		return data.apply(r, r.ByID(envelope.ID), updateFields)
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Messages: ticket.Messages,
			Error:    &s,
		})
		return
	}

	if ticket.HasErrors() {
		c.JSON(http.StatusBadRequest, EnvelopeResponse{
			Messages: ticket.Messages,
			Error:    ticketError(ticket),
		})
		return
	}

	err = models.DB.First(&envelope, envelope.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	r := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &r, Messages: ticket.Messages})
}

// @Summary		Delete envelope
// @Description	Deletes an envelope. The money in it is moved to the extra envelope, or the envelope with priority 1 if there is no extra envelope.
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
	envelope, err := envelopeFromURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	ticket, err := models.Update("delete envelope", func(r *budget.Repository) budget.Ticket {
		return budget.DeleteEnvelope(r, r.ByID(envelope.ID))
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if ticket.HasErrors() {
		c.JSON(http.StatusBadRequest, httpError{
			Error: *ticketError(ticket),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
