package errors

import "github.com/valentinalvarez/ecommerce-accounts/constant"

type CustomError struct {
	errType constant.ErrorType
	details []string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Details returns the accumulated validation messages, if any.
func (c CustomError) Details() []string {
	return c.details
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError wraps the ordered message list produced by the dto
// transformers so the transport layer can return it verbatim.
func SetValidationError(details []string) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		details: details,
	}
}
