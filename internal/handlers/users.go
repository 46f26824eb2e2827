package handlers

import (
	"net/http"

	"exercise_tracker/internal/metrics"
	"exercise_tracker/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusOK   = "ok"
	serviceTag = "Exercise Tracker API"
)

// createUserRequest accepts form-encoded or JSON bodies.
type createUserRequest struct {
	Username string `form:"username" json:"username" example:"alice"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	Username string `json:"username" example:"alice"`
	ID       string `json:"id" example:"5f2b1c9e8d3a4b0012345678"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{Username: u.Username, ID: u.ID}
}

// @Summary      Service banner
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	c.String(http.StatusOK, serviceTag)
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Create user
// @Tags         users
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        username  formData  string  false  "Username"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if !h.bind(c, &req, c.ShouldBind, "user_create_bind") {
		return
	}

	u, err := h.services.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		h.respondError(c, err, errCreateUser, "user_create_failed", "username", req.Username)
		return
	}
	metrics.UsersCreatedTotal.Inc()

	c.JSON(http.StatusOK, toUserResponse(u))
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   UserResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err, errListUsers, "user_list_failed")
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}
