package userprofile

import (
	"context"
	"errors"
	"net/http"

	"investments-api/pkg/logger"
	"investments-api/pkg/rest"
	"investments-api/src/model"

	"github.com/gin-gonic/gin"
)

// InvestmentLister is the slice of the investment service the profile
// routes need.
type InvestmentLister interface {
	ListByUser(ctx context.Context, userId int64, limit, offset int) ([]model.Investment, error)
}

type Handler struct {
	service     *Service
	investments InvestmentLister
	logger      *logger.Logger
}

func NewHandler(service *Service, investments InvestmentLister, log *logger.Logger) *Handler {
	return &Handler{service: service, investments: investments, logger: log}
}

// CreateUserProfile godoc
// @Summary      Create a user profile
// @Tags         UserProfiles
// @Accept       json
// @Produce      json
// @Param        body  body      UserProfileRequest  true  "Profile"
// @Success      201   {object}  model.UserProfile
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/user-profiles [post]
func (h *Handler) CreateUserProfile(c *gin.Context) {
	var req UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.service.CreateProfile(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// ListUserProfiles godoc
// @Summary      List user profiles
// @Tags         UserProfiles
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 1000)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {array}   model.UserProfile
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/user-profiles [get]
func (h *Handler) ListUserProfiles(c *gin.Context) {
	limit, offset, ok := rest.Pagination(c)
	if !ok {
		return
	}

	profiles, err := h.service.ListProfiles(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetUserProfile godoc
// @Summary      Get a user profile by id
// @Tags         UserProfiles
// @Produce      json
// @Param        id   path      int  true  "Profile id"
// @Success      200  {object}  model.UserProfile
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/user-profiles/{id} [get]
func (h *Handler) GetUserProfile(c *gin.Context) {
	id, ok := rest.IdParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateUserProfile godoc
// @Summary      Replace a user profile
// @Tags         UserProfiles
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Profile id"
// @Param        body  body      UserProfileRequest  true  "Profile"
// @Success      200   {object}  model.UserProfile
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/user-profiles/{id} [put]
func (h *Handler) UpdateUserProfile(c *gin.Context) {
	id, ok := rest.IdParam(c, "id")
	if !ok {
		return
	}

	var req UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteUserProfile godoc
// @Summary      Delete a user profile and its investments
// @Tags         UserProfiles
// @Param        id   path  int  true  "Profile id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/user-profiles/{id} [delete]
func (h *Handler) DeleteUserProfile(c *gin.Context) {
	id, ok := rest.IdParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUserInvestments godoc
// @Summary      List the investments of a user profile
// @Tags         UserProfiles
// @Produce      json
// @Param        id      path      int  true   "Profile id"
// @Param        limit   query     int  false  "Page size (max 1000)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200     {array}   model.Investment
// @Failure      404     {object}  map[string]string
// @Router       /api/user-profiles/{id}/investments [get]
func (h *Handler) ListUserInvestments(c *gin.Context) {
	id, ok := rest.IdParam(c, "id")
	if !ok {
		return
	}
	limit, offset, ok := rest.Pagination(c)
	if !ok {
		return
	}

	if _, err := h.service.GetProfile(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	investments, err := h.investments.ListByUser(c.Request.Context(), id, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, investments)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDuplicateTaxID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidData):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(err, "User profile request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process user profile request"})
	}
}
