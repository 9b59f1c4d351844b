package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DennisSalmazs/project-service/internal/auth"
	"github.com/DennisSalmazs/project-service/internal/projects/domain"
	"github.com/DennisSalmazs/project-service/internal/projects/service"
)

type projectReq struct {
	Code      string     `json:"project_code"`
	Name      string     `json:"project_name"`
	Detail    string     `json:"detail"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	caller := auth.CallerFrom(c)
	p, err := h.svc.Create(c.Request.Context(), caller, service.CreateInput{
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		Detail:    req.Detail,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) read(c *gin.Context) {
	p, err := h.svc.GetByCode(c.Request.Context(), auth.CallerFrom(c), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) readManager(c *gin.Context) {
	manager, err := h.svc.ManagerByCode(c.Request.Context(), auth.CallerFrom(c), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "assigned_manager": manager})
}

func (h *Handler) listWithDetails(c *gin.Context) {
	items, err := h.svc.ListForCaller(c.Request.Context(), auth.CallerFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) listAllAdmin(c *gin.Context) {
	items, err := h.svc.ListAllAdmin(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) listForManager(c *gin.Context) {
	items, err := h.svc.ListForManager(c.Request.Context(), auth.CallerFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) countNonCompleted(c *gin.Context) {
	n, err := h.svc.CountNonCompletedByManager(c.Request.Context(), c.Param("manager"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": n})
}

func (h *Handler) checkExists(c *gin.Context) {
	exists, err := h.svc.CheckExists(c.Request.Context(), auth.CallerFrom(c), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "exists": exists})
}

func (h *Handler) update(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), auth.CallerFrom(c), c.Param("code"), service.UpdateInput{
		Name:      strings.TrimSpace(req.Name),
		Detail:    req.Detail,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) complete(c *gin.Context) {
	p, err := h.svc.Complete(c.Request.Context(), auth.CallerFrom(c), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), auth.CallerFrom(c), c.Param("code")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// fail maps domain errors onto HTTP status codes, one per error kind.
func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrProjectAlreadyExists),
		errors.Is(err, domain.ErrProjectCompleted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDetailsNotRetrieved),
		errors.Is(err, domain.ErrTasksNotCompleted),
		errors.Is(err, domain.ErrTasksNotDeleted):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
