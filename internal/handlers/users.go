package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request DTO for user creation; accepts JSON and form-encoded bodies.
type createUserRequest struct {
	Username string `json:"username" form:"username"`
}

// CreateUserRequest is an exported model for Swagger docs of the createUser payload.
type CreateUserRequest struct {
	Username string `json:"username" example:"alice"`
}

// @Summary      Create user
// @Description  Registers a username. Validation failures return status 200 with an error payload.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body   CreateUserRequest  true  "User payload"
// @Success      200   {object}  map[string]string  "_id, username — or error"
// @Failure      500   {object}  map[string]string
// @Router       /api/users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	// An unreadable or empty body is the same as a missing username.
	_ = c.ShouldBind(&req)

	user, err := h.services.Users.Create(c.Request.Context(), req.Username)
	if err != nil {
		h.respondServiceError(c, "user_create_failed", err, "username", req.Username)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   map[string]string  "_id, username"
// @Failure      500  {object}  map[string]string
// @Router       /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("user_list_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
