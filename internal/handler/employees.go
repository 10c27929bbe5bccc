package handler

import (
	"net/http"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/dto"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/middleware"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeesHandler serves the self-service surface: profile read/edit and
// profile image set/clear/fetch.
type EmployeesHandler struct{ svc service.EmployeeService }

func NewEmployeesHandler(svc service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{svc: svc}
}

// Get godoc
// @Summary Employee detail — admin or the record owner; hidden as 404 otherwise
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/employees/{id} [get]
func (h *EmployeesHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.svc.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmployeesHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.UpdateProfile(c.Request.Context(), middleware.GetActor(c), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile updated successfully"})
}

func (h *EmployeesHandler) UpdateImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateImageRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.UpdateImage(c.Request.Context(), middleware.GetActor(c), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Image updated successfully"})
}

func (h *EmployeesHandler) GetImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.svc.GetImage(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
