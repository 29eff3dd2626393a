package errs

import (
	"fmt"
	"net/http"
	"strings"

	"medauth/internal/pkg/logx"
)

// CustomError is an error that knows how it is reported to a client.
type CustomError struct {
	// Code is the application error code.
	Code int

	// Message is the text shown to the client.
	Message string

	// Status is the HTTP status of the response.
	Status int
}

// Error implements the error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError builds the CustomError registered for code. Codes without an
// explicit status answer 400. details fill the printf verbs of the message;
// for ErrUnknown the first detail may be the underlying error, which is logged
// and never shown to the client. Unknown codes fall back to ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]
	if !ok {
		logx.Error(
			fmt.Errorf("error code %d is not registered", code),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &unknownErr
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusBadRequest
	}

	if code == ErrUnknown {
		if len(details) > 0 {
			if originalErr, ok := details[0].(error); ok {
				logx.Error(originalErr, "Handling ErrUnknown with underlying error")
			}
		}
		return &customErr
	}

	if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn(
				"Details provided for error, but message template has no formatting placeholders. Details ignored.",
				"code", code,
			)
		}
	}

	return &customErr
}
