package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ehsworks/safety-go/internal/api/middleware"
	"github.com/ehsworks/safety-go/internal/application"
	"github.com/ehsworks/safety-go/internal/domain/user"
	"github.com/ehsworks/safety-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Login authenticates and issues the session token as JSON and cookie.
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "email and password are required"})
		return
	}

	usr, token, err := h.svc.Login(input)
	if errors.Is(err, application.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid credentials"})
		return
	}
	if errors.Is(err, application.ErrUserInactive) {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "account is not active"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "login failed"})
		return
	}

	c.SetCookie("token", token, 24*3600, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token: token,
		ID:    usr.ID,
		Name:  usr.FullName(),
		Role:  int(usr.RoleID),
		Zone:  usr.Zone,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}

// Profile returns the authenticated caller's stored record.
func (h *UserHandler) Profile(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	usr, err := h.svc.Profile(actor.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "user not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// List returns accounts filtered by role, zone or status.
func (h *UserHandler) List(c *gin.Context) {
	var filter user.Filter
	if v := c.Query("role_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid role_id"})
			return
		}
		role := user.Role(n)
		filter.RoleID = &role
	}
	if v := c.Query("zone"); v != "" {
		zone := v
		filter.Zone = &zone
	}
	if v := c.Query("active_status"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid active_status"})
			return
		}
		status := user.Status(n)
		filter.ActiveStatus = &status
	}

	users, err := h.svc.ListUsers(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create registers a new account.
func (h *UserHandler) Create(c *gin.Context) {
	var input user.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user payload"})
		return
	}

	usr, err := h.svc.CreateUser(input)
	switch {
	case errors.Is(err, application.ErrEmailTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: "email is already registered"})
	case errors.Is(err, application.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unknown role"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to create user"})
	default:
		c.JSON(http.StatusCreated, response.ResultResponse{Result: "success", ID: int64(usr.ID)})
	}
}

// Update edits an account's details.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}
	var input user.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user payload"})
		return
	}

	usr, err := h.svc.UpdateUser(uint(id), input)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "user not found"})
	case errors.Is(err, application.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unknown role"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to update user"})
	default:
		c.JSON(http.StatusOK, usr)
	}
}

// SetStatus activates, deactivates or blocks an account.
func (h *UserHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
		return
	}
	var input user.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "active_status is required"})
		return
	}

	usr, err := h.svc.SetUserStatus(uint(id), *input.ActiveStatus)
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "user not found"})
	case errors.Is(err, application.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "unknown account status"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to update status"})
	default:
		c.JSON(http.StatusOK, usr)
	}
}
