package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tuitionhub/tuition-backend/internal/model"
	"github.com/tuitionhub/tuition-backend/internal/response"
	"github.com/tuitionhub/tuition-backend/internal/service"
	"github.com/tuitionhub/tuition-backend/internal/validator"
)

// AuthHandler handles the registration endpoint.
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register godoc
// POST /api/auth/register
// Registers a new user. The submitted role is ignored: every registrant is
// assigned ADMIN. Responds with the stored record, hashed password included.
//
// The duplicate check below is read-then-write with no atomicity guarantee;
// two concurrent registrations of the same username can both pass it. The
// users table has no unique constraint, so the race is real. Kept as-is
// pending product sign-off on a conflict error path.
func (h *AuthHandler) Register(c *gin.Context) {
	var user model.User
	if fields := validator.Bind(c, &user); fields != nil {
		response.JSON(c, http.StatusBadRequest, fields)
		return
	}

	user.Username = strings.TrimSpace(user.Username)

	existing, err := h.userService.FindByUsername(c.Request.Context(), user.Username)
	if err != nil {
		response.Empty(c, http.StatusInternalServerError)
		return
	}
	if existing != nil {
		response.Text(c, http.StatusBadRequest, "Username already exists")
		return
	}

	user.Role = model.RoleAdmin

	created, err := h.userService.Register(c.Request.Context(), &user)
	if err != nil {
		response.Empty(c, http.StatusInternalServerError)
		return
	}

	response.JSON(c, http.StatusOK, created)
}
