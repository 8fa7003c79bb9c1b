package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notes-service/internal/domain"
	"notes-service/internal/service"
	"notes-service/internal/transport/http/middleware"
	resp "notes-service/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// registerIn caps the password at bcrypt's 72-byte input limit so an accepted
// registration always round-trips through login.
type registerIn struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type loginIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// userOut is the wire projection; the password hash stays internal.
type userOut struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type tokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func toUserOut(u *domain.User) userOut {
	return userOut{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Register handles POST /users/register.
func (h *UserHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Abort(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.svc.Register(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			resp.Abort(c, http.StatusBadRequest, resp.MsgDuplicateUsername)
			return
		}
		h.log.Error("register failed", zap.Error(err))
		resp.Abort(c, http.StatusInternalServerError, resp.MsgInternal)
		return
	}
	c.JSON(http.StatusCreated, toUserOut(u))
}

// Login handles POST /users/login.
func (h *UserHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Abort(c, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.svc.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			resp.Abort(c, http.StatusUnauthorized, resp.MsgInvalidCredentials)
			return
		}
		h.log.Error("login failed", zap.Error(err))
		resp.Abort(c, http.StatusInternalServerError, resp.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, tokenOut{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /users/me for the authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		resp.Abort(c, http.StatusUnauthorized, resp.MsgCouldNotValidate)
		return
	}
	c.JSON(http.StatusOK, toUserOut(u))
}
