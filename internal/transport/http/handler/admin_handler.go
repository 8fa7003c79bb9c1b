package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notes-service/internal/service"
	resp "notes-service/internal/transport/http/response"
)

type AdminHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewAdminHandler(svc *service.UserService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: log}
}

// ListUsers handles GET /admin/users. The route group enforces the admin role.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Error("list users failed", zap.Error(err))
		resp.Abort(c, http.StatusInternalServerError, resp.MsgInternal)
		return
	}
	out := make([]userOut, 0, len(users))
	for i := range users {
		out = append(out, toUserOut(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}
