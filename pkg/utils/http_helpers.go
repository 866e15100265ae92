package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	apperrors "makerspace-system/pkg/errors"
	"makerspace-system/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

const (
	DefaultLimit = 200
	MaxLimit     = 500
)

// statusByError maps the typed service conditions to transport status codes.
// Authorization and duplicate failures map to 403, the unsigned waiver to 451
// ("legally blocked"), missing records at mutation time to 422. Clients
// depend on these codes; do not change them without an API version bump.
var statusByError = map[error]int{
	apperrors.ErrAuthorizationDenied:      http.StatusForbidden,
	apperrors.ErrDuplicateCheckoutRequest: http.StatusForbidden,
	apperrors.ErrWaiverNotSigned:          http.StatusUnavailableForLegalReasons,
	apperrors.ErrEquipmentNotFound:        http.StatusUnprocessableEntity,
	apperrors.ErrCheckoutRequestNotFound:  http.StatusUnprocessableEntity,
	apperrors.ErrUserNotFound:             http.StatusUnprocessableEntity,
	apperrors.ErrNotFound:                 http.StatusUnprocessableEntity,
	apperrors.ErrInvalidCredentials:       http.StatusUnauthorized,
	apperrors.ErrInvalidToken:             http.StatusUnauthorized,
	apperrors.ErrTokenExpired:             http.StatusUnauthorized,
	apperrors.ErrTokenNotYetValid:         http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:        http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:         http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:          http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:        http.StatusUnauthorized,
	apperrors.ErrBadRequest:               http.StatusBadRequest,
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed the '%s' check", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "validation error: " + strings.Join(msgs, "; "),
		})
	}

	for sentinel, code := range statusByError {
		if errors.Is(err, sentinel) {
			return c.JSON(code, map[string]interface{}{
				"status":  false,
				"message": err.Error(),
			})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "internal server error",
	})
}

func ParseFilterFromQuery(values url.Values) types.Filter {
	filterReq := types.Filter{
		Sort:   make(map[string]string),
		Filter: make(map[string]interface{}),
		Limit:  DefaultLimit,
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				filterReq.Limit = MaxLimit
			} else {
				filterReq.Limit = l
			}
		}
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filterReq.Offset = o
		}
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			field := key[5 : len(key)-1]
			direction := strings.ToLower(vals[0])
			if direction == "asc" || direction == "desc" {
				filterReq.Sort[field] = direction
			}
			continue
		}

		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field := key[7 : len(key)-1]
			if existing, ok := filterReq.Filter[field]; ok {
				filterReq.Filter[field] = fmt.Sprintf("%v,%s", existing, vals[0])
			} else {
				filterReq.Filter[field] = vals[0]
			}
		}
	}

	return filterReq
}
