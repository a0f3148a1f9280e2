package investment

import (
	"errors"
	"net/http"
	"strconv"

	"investments-api/pkg/logger"
	"investments-api/pkg/rest"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// CreateInvestment godoc
// @Summary      Create an investment
// @Description  Records a buy/sell operation for an existing user profile
// @Tags         Investments
// @Accept       json
// @Produce      json
// @Param        body  body      InvestmentRequest  true  "Investment"
// @Success      201   {object}  model.Investment
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/investments [post]
func (h *Handler) CreateInvestment(c *gin.Context) {
	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	investment, err := h.service.CreateInvestment(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, investment)
}

// ListInvestments godoc
// @Summary      List investments
// @Tags         Investments
// @Produce      json
// @Param        user_id  query     int  false  "Only investments of this profile"
// @Param        limit    query     int  false  "Page size (max 1000)"
// @Param        offset   query     int  false  "Rows to skip"
// @Success      200      {array}   model.Investment
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/investments [get]
func (h *Handler) ListInvestments(c *gin.Context) {
	limit, offset, ok := rest.Pagination(c)
	if !ok {
		return
	}

	filter := Filter{Limit: limit, Offset: offset}
	if raw, present := c.GetQuery("user_id"); present {
		userId, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userId <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id must be a positive integer"})
			return
		}
		filter.UserId = userId
	}

	investments, err := h.service.ListInvestments(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, investments)
}

// GetInvestment godoc
// @Summary      Get an investment by id
// @Tags         Investments
// @Produce      json
// @Param        id   path      int  true  "Investment id"
// @Success      200  {object}  model.Investment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/investments/{id} [get]
func (h *Handler) GetInvestment(c *gin.Context) {
	id, ok := rest.IdParam(c, "id")
	if !ok {
		return
	}

	investment, err := h.service.GetInvestment(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, investment)
}

// UpdateInvestment godoc
// @Summary      Replace an investment
// @Tags         Investments
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Investment id"
// @Param        body  body      InvestmentRequest  true  "Investment"
// @Success      200   {object}  model.Investment
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/investments/{id} [put]
func (h *Handler) UpdateInvestment(c *gin.Context) {
	id, ok := rest.IdParam(c, "id")
	if !ok {
		return
	}

	var req InvestmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	investment, err := h.service.UpdateInvestment(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, investment)
}

// DeleteInvestment godoc
// @Summary      Delete an investment
// @Tags         Investments
// @Param        id   path  int  true  "Investment id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/investments/{id} [delete]
func (h *Handler) DeleteInvestment(c *gin.Context) {
	id, ok := rest.IdParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteInvestment(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUnknownOwner):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(err, "Investment request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process investment request"})
	}
}
