package utils

import (
	"errors"
	"net/http"
	"time"

	"unistay/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Meta      *Meta       `json:"meta,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type Meta struct {
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Total      int64           `json:"total,omitempty"`
	Count      int             `json:"count,omitempty"`
}

func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func SuccessResponseWithMeta(c *gin.Context, message string, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Meta:      meta,
		Timestamp: time.Now(),
	})
}

func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, APIResponse{
		Status: StatusError,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now(),
	})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", resource+" not found")
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message)
}

func UnauthorizedResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", ErrUnauthorized)
}

func ForbiddenResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", ErrForbidden)
}

func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", ErrInternalServer)
}

// ServiceErrorResponse maps business-layer sentinel errors onto the HTTP error
// scheme: 400 for validation and business-rule rejections, 404 for missing
// entities, 409 for duplicate-key conflicts, 500 for internal and external
// service failures.
func ServiceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		ErrorResponse(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, apperrors.ErrDriverUnavailable):
		ErrorResponse(c, http.StatusBadRequest, "DRIVER_UNAVAILABLE", err.Error())
	case errors.Is(err, apperrors.ErrRideFull):
		ErrorResponse(c, http.StatusBadRequest, "RIDE_FULL", err.Error())
	case errors.Is(err, apperrors.ErrAlreadyJoined):
		ErrorResponse(c, http.StatusBadRequest, "ALREADY_JOINED", err.Error())
	case errors.Is(err, apperrors.ErrExternalService):
		ErrorResponse(c, http.StatusInternalServerError, "EXTERNAL_SERVICE_ERROR", err.Error())
	case errors.Is(err, apperrors.ErrConfig):
		ErrorResponse(c, http.StatusInternalServerError, "CONFIG_ERROR", err.Error())
	default:
		InternalServerErrorResponse(c)
	}
}
