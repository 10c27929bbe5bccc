package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/apierror"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/policy"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseIDParam reads the :id path segment. Returns false after writing the
// error response when the segment is not a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid employee id"))
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors to HTTP statuses and client-safe messages.
// Unknown errors become a generic 500 and are recorded on the context so the
// ErrorHandler middleware logs them with the request id.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
	case errors.Is(err, service.ErrAccountInactive):
		c.JSON(http.StatusUnauthorized, apierror.New("Account is inactive. Please contact Admin."))
	case errors.Is(err, service.ErrDuplicateUsername):
		c.JSON(http.StatusBadRequest, apierror.New("Username already exists."))
	case errors.Is(err, service.ErrInvalidImage):
		c.JSON(http.StatusBadRequest, apierror.New("Invalid image. Must be a valid Base64 string."))
	case errors.Is(err, service.ErrImageTooLarge):
		c.JSON(http.StatusBadRequest, apierror.New("Profile image is too large. Maximum allowed size is 2 MB."))
	case errors.Is(err, service.ErrNoImage):
		c.JSON(http.StatusNotFound, apierror.New("No image found"))
	case errors.Is(err, policy.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("Employee not found."))
	case errors.Is(err, policy.ErrForbidden):
		c.JSON(http.StatusForbidden, apierror.New("Forbidden"))
	case errors.Is(err, policy.ErrActionDenied):
		c.JSON(http.StatusBadRequest, apierror.New("Action denied."))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
