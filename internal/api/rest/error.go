package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/francuello10/tec-ecommerce-suite/internal/api/dto"
	"github.com/francuello10/tec-ecommerce-suite/internal/logger"
)

var statusByCode = map[dto.ErrorCode]int{
	dto.ErrCodeBadRequest:       http.StatusBadRequest,
	dto.ErrCodeNotFound:         http.StatusNotFound,
	dto.ErrCodeValidationFailed: http.StatusUnprocessableEntity,
	dto.ErrCodeUnauthorized:     http.StatusUnauthorized,
	dto.ErrCodeForbidden:        http.StatusForbidden,
	dto.ErrCodeDatabaseError:    http.StatusInternalServerError,
	dto.ErrCodeServiceError:     http.StatusServiceUnavailable,
}

// respondError maps executor errors to responses; errors without an API code are internal
func respondError(c *gin.Context, err error, message string) {
	var apiErr *dto.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorCtx(c.Request.Context(), err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: &dto.APIError{
			Code:    dto.ErrCodeInternalError,
			Message: message,
		}})
		return
	}

	status, ok := statusByCode[apiErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err)
	}

	c.JSON(status, dto.ErrorResponse{Error: apiErr})
}

func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.NewBadRequestError(message, details...)})
}

func respondValidationError(c *gin.Context, details string) {
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: dto.NewValidationError(details)})
}
