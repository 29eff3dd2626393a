package errs

import "net/http"

// errorMap holds the client message and HTTP status of every code.
var errorMap = map[int]CustomError{
	// 1xxx
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Malformed request body."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrFormParseFailed:       {Code: ErrFormParseFailed, Message: "Failed to process submitted form."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},

	// 3xxx
	ErrRegisterFieldsRequired: {Code: ErrRegisterFieldsRequired, Message: "Name, email, password required."},
	ErrLoginFieldsRequired:    {Code: ErrLoginFieldsRequired, Message: "Email and password required."},
	ErrEmailAlreadyRegistered: {Code: ErrEmailAlreadyRegistered, Message: "Email already registered.", Status: http.StatusConflict},
	ErrEmailNotFound:          {Code: ErrEmailNotFound, Message: "Wrong credentials: email not found.", Status: http.StatusUnauthorized},
	ErrIncorrectPassword:      {Code: ErrIncorrectPassword, Message: "Wrong credentials: incorrect password.", Status: http.StatusUnauthorized},
	ErrPasswordTooLong:        {Code: ErrPasswordTooLong, Message: "Password must be at most %d bytes."},

	// 5xxx
	ErrUnknown: {Code: ErrUnknown, Message: "Server error.", Status: http.StatusInternalServerError},
}
