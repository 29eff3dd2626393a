/*
Package req binds HTTP request bodies onto handler input structs.

Both JSON and URL-encoded form bodies are accepted, so the same handler serves
API clients and plain HTML forms. Binding failures are reported as
*errs.CustomError values ready to be written back to the client.
*/
package req

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"medauth/internal/pkg/errs"
)

// MaxBodySize caps the request body read by Bind.
const MaxBodySize int64 = 1 << 20 // 1 MB

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Bind decodes the request body into dst according to its Content-Type.
// Form fields are matched against the json tags of dst.
func Bind(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	switch mediaType {
	case contentTypeJSON:
		return BindJSON(r, dst)
	case contentTypeForm:
		return BindForm(r, dst)
	default:
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}
}

// BindJSON decodes a single JSON value from the body into dst.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(dst); err != nil {
		if isTooLarge(err) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// BindForm parses a URL-encoded body and copies the first value of every
// field into dst.
func BindForm(r *http.Request, dst any) *errs.CustomError {
	if err := r.ParseForm(); err != nil {
		if isTooLarge(err) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrFormParseFailed)
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return errs.NewError(errs.ErrFormParseFailed)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return errs.NewError(errs.ErrFormParseFailed)
	}

	return nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
