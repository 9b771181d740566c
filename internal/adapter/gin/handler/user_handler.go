package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"users-api/internal/usecase/user"
	"users-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.UserUsecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.UserUsecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user.
// Pointers let binding reject absent or null fields while still accepting
// empty strings. Keys must match exactly; see requireExactKeys.
type CreateUserRequest struct {
	Name  *string `json:"name" binding:"required"`
	Email *string `json:"email" binding:"required"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ResultResponse is the body of every create response, success or not.
type ResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		h.rejectBind(c, err)
		return
	}
	if err := requireExactKeys(raw, "name", "email"); err != nil {
		h.rejectBind(c, err)
		return
	}

	// The body is cached by the first bind, so it can be decoded again.
	var req CreateUserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.rejectBind(c, err)
		return
	}

	res := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:  *req.Name,
		Email: *req.Email,
	})

	c.JSON(http.StatusOK, ResultResponse{
		Success: res.Success,
		Message: res.Message,
	})
}

// rejectBind answers 400 the same way gin's BindJSON does.
func (h *UserHandler) rejectBind(c *gin.Context, err error) {
	logger.WithContext(c.Request.Context(), h.log).Warn("invalid create user request", zap.Error(err))
	_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
}

// requireExactKeys fails unless every key is present with its exact spelling.
// encoding/json matches field names case-insensitively, so binding alone
// would accept {"NAME": ...} for the name field.
func requireExactKeys(raw map[string]json.RawMessage, keys ...string) error {
	for _, k := range keys {
		if _, ok := raw[k]; !ok {
			return fmt.Errorf("missing field %q", k)
		}
	}
	return nil
}

// ListUsers handles GET /users. The status is 200 even when the query
// failed; the body is then an empty array.
func (h *UserHandler) ListUsers(c *gin.Context) {
	resp := h.uc.ListUsers(c.Request.Context())

	users := make([]UserResponse, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
		})
	}

	c.JSON(http.StatusOK, users)
}
