package handlers

import (
	"net/http"

	"github.com/ehsworks/safety-go/internal/application"
	"github.com/ehsworks/safety-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type OptionHandler struct {
	svc *application.OptionService
}

func NewOptionHandler(svc *application.OptionService) *OptionHandler {
	return &OptionHandler{svc: svc}
}

// List returns one vocabulary, optionally cascaded under a parent key.
func (h *OptionHandler) List(c *gin.Context) {
	optionType := c.Query("type")
	if optionType == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "type is required"})
		return
	}
	entries, err := h.svc.GetOptions(optionType, c.Query("cascade_type"), c.Query("cascade_key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load options"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListAll returns every active vocabulary entry grouped by type.
func (h *OptionHandler) ListAll(c *gin.Context) {
	grouped, err := h.svc.GetAllOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load options"})
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *OptionHandler) Roles(c *gin.Context) {
	roles, err := h.svc.GetRoles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load roles"})
		return
	}
	c.JSON(http.StatusOK, roles)
}
