package diagnostics

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TestConnection godoc
// @Summary      Test the database connection
// @Description  Opens a connection, reads the server version and reports which mapped tables exist and how many rows they hold
// @Tags         Diagnostics
// @Produce      json
// @Success      200  {object}  diagnostics.ConnectionReport
// @Failure      500  {object}  diagnostics.Failure
// @Failure      503  {object}  diagnostics.Failure
// @Router       /api/TestConnection/test-connection [get]
func (h *Handler) TestConnection(c *gin.Context) {
	report, err := h.service.TestConnection(c.Request.Context())
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// TestTables godoc
// @Summary      List the mapped tables present in the database
// @Tags         Diagnostics
// @Produce      json
// @Success      200  {object}  diagnostics.TablesReport
// @Failure      500  {object}  diagnostics.Failure
// @Failure      503  {object}  diagnostics.Failure
// @Router       /api/TestConnection/test-tables [get]
func (h *Handler) TestTables(c *gin.Context) {
	report, err := h.service.TestTables(c.Request.Context())
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// TestDifferentFormats godoc
// @Summary      Try every connection string variant
// @Description  Attempts each candidate connection string and reports every outcome with credentials masked
// @Tags         Diagnostics
// @Produce      json
// @Success      200  {array}   diagnostics.FormatProbeResult
// @Router       /api/TestConnection/test-different-formats [get]
func (h *Handler) TestDifferentFormats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.TestFormats(c.Request.Context()))
}

func respondFailure(c *gin.Context, err error) {
	var failure *Failure
	if errors.As(err, &failure) {
		c.JSON(failure.HTTPStatus(), failure)
		return
	}
	_ = c.Error(err)
}
