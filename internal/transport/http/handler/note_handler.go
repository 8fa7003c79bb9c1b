package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notes-service/internal/domain"
	"notes-service/internal/service"
	"notes-service/internal/transport/http/middleware"
	resp "notes-service/internal/transport/http/response"
)

type NoteHandler struct {
	svc *service.NoteService
	log *zap.Logger
}

func NewNoteHandler(svc *service.NoteService, log *zap.Logger) *NoteHandler {
	return &NoteHandler{svc: svc, log: log}
}

type noteIn struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type noteOut struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toNoteOut(n *domain.Note) noteOut {
	return noteOut{ID: n.ID, Title: n.Title, Content: n.Content, CreatedAt: n.CreatedAt}
}

// noteID parses the :id param. A non-numeric id gets the same 404 body as a
// missing note, so nothing is revealed about what exists.
func noteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Abort(c, http.StatusNotFound, resp.MsgNoteNotFound)
		return 0, false
	}
	return uint(id), true
}

func (h *NoteHandler) owner(c *gin.Context) (uint, bool) {
	u := middleware.CurrentUser(c)
	if u == nil {
		resp.Abort(c, http.StatusUnauthorized, resp.MsgCouldNotValidate)
		return 0, false
	}
	return u.ID, true
}

func (h *NoteHandler) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, domain.ErrNoteNotFound) {
		resp.Abort(c, http.StatusNotFound, resp.MsgNoteNotFound)
		return
	}
	h.log.Error(op+" failed", zap.Error(err))
	resp.Abort(c, http.StatusInternalServerError, resp.MsgInternal)
}

// Create handles POST /notes.
func (h *NoteHandler) Create(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	var in noteIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Abort(c, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.svc.Create(c.Request.Context(), ownerID, in.Title, in.Content)
	if err != nil {
		h.fail(c, "create note", err)
		return
	}
	c.JSON(http.StatusOK, toNoteOut(n))
}

// List handles GET /notes; only the caller's own notes, in creation order.
func (h *NoteHandler) List(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	notes, err := h.svc.List(c.Request.Context(), ownerID)
	if err != nil {
		h.fail(c, "list notes", err)
		return
	}
	out := make([]noteOut, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteOut(&notes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /notes/:id.
func (h *NoteHandler) Get(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}
	n, err := h.svc.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		h.fail(c, "get note", err)
		return
	}
	c.JSON(http.StatusOK, toNoteOut(n))
}

// Update handles PUT /notes/:id; full replace of title and content.
func (h *NoteHandler) Update(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}
	var in noteIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Abort(c, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.svc.Update(c.Request.Context(), ownerID, id, in.Title, in.Content)
	if err != nil {
		h.fail(c, "update note", err)
		return
	}
	c.JSON(http.StatusOK, toNoteOut(n))
}

// Delete handles DELETE /notes/:id; the second delete of the same id is a 404.
func (h *NoteHandler) Delete(c *gin.Context) {
	ownerID, ok := h.owner(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.fail(c, "delete note", err)
		return
	}
	resp.JSON(c, http.StatusOK, resp.MsgNoteDeleted)
}
