package handler

import (
	"net/http"
	"strconv"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/apierror"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/dto"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/middleware"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/repository"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin-only surface: the summary grid, profile and
// status edits of non-Admin records, and the audit trail.
type AdminHandler struct {
	svc       service.EmployeeService
	auditRepo repository.AuditRepository
}

func NewAdminHandler(svc service.EmployeeService, auditRepo repository.AuditRepository) *AdminHandler {
	return &AdminHandler{svc: svc, auditRepo: auditRepo}
}

// List godoc
// @Summary Summary grid of all employees (no password hashes, no image blobs)
// @Tags admin
// @Produce json
// @Success 200 {array} dto.EmployeeSummaryResponse
// @Failure 403 {object} apierror.APIError
// @Router /v1/admin/employees [get]
func (h *AdminHandler) List(c *gin.Context) {
	resp, err := h.svc.ListSummaries(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.AdminUpdateProfile(c.Request.Context(), middleware.GetActor(c), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Employee updated successfully"})
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), middleware.GetActor(c), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Status updated successfully"})
}

// ListAuditEvents returns the most recent audit-trail entries, optionally
// filtered by employee_id and action query parameters.
func (h *AdminHandler) ListAuditEvents(c *gin.Context) {
	filter := repository.AuditFilter{Action: c.Query("action")}
	if v := c.Query("employee_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid employee_id filter"))
			return
		}
		filter.EmployeeID = uint(id)
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}

	events, err := h.auditRepo.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.AuditEventResponse, len(events))
	for i, evt := range events {
		resp[i] = dto.AuditEventResponse{
			ID:          evt.ID.String(),
			EmployeeID:  evt.EmployeeID,
			Action:      evt.Action,
			PerformedBy: evt.PerformedBy,
			Detail:      evt.Detail,
			CreatedAt:   evt.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}
