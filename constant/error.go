package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrValidation
	ErrResetTokenExpired
	ErrInsufficientStock
	ErrInvalidCartStatus
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrCredentialExists:  "email already exists",
	ErrInvalidPassword:   "password invalid",
	ErrValidation:        "validation failed",
	ErrResetTokenExpired: "password reset token expired",
	ErrInsufficientStock: "insufficient stock",
	ErrInvalidCartStatus: "invalid cart status",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusBadRequest,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrCredentialExists:  http.StatusBadRequest,
	ErrInvalidPassword:   http.StatusBadRequest,
	ErrValidation:        http.StatusBadRequest,
	ErrResetTokenExpired: http.StatusBadRequest,
	ErrInsufficientStock: http.StatusBadRequest,
	ErrInvalidCartStatus: http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrCredentialExists:  "0005",
	ErrInvalidPassword:   "0006",
	ErrValidation:        "0007",
	ErrResetTokenExpired: "0008",
	ErrInsufficientStock: "0009",
	ErrInvalidCartStatus: "0010",
}
