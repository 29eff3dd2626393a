/*
Package errs defines the application error codes and the CustomError type
returned to HTTP clients.
*/
package errs

// 1xxx: request handling
const (
	// ErrInvalidParams means request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType means the Content-Type is neither JSON nor a URL-encoded form.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat means the JSON body could not be decoded.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody means data followed the JSON value in the body.
	ErrExtraContentInBody = 1004

	// ErrFormParseFailed means the URL-encoded form could not be parsed.
	ErrFormParseFailed = 1005

	// ErrRequestEntityTooLarge means the body exceeded the size limit.
	ErrRequestEntityTooLarge = 1006
)

// 3xxx: accounts and credentials
const (
	// ErrRegisterFieldsRequired means name, email or password was missing on registration.
	ErrRegisterFieldsRequired = 3001

	// ErrLoginFieldsRequired means email or password was missing on login.
	ErrLoginFieldsRequired = 3002

	// ErrEmailAlreadyRegistered means a record with the same email exists.
	ErrEmailAlreadyRegistered = 3003

	// ErrEmailNotFound means no record matches the login email.
	ErrEmailNotFound = 3004

	// ErrIncorrectPassword means the password did not match the stored hash.
	ErrIncorrectPassword = 3005

	// ErrPasswordTooLong means the password exceeds what bcrypt can hash.
	ErrPasswordTooLong = 3006
)

// 5xxx: internal
const (
	// ErrUnknown is any unclassified server failure.
	ErrUnknown = 5000
)
