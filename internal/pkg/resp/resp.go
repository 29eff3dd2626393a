/*
Package resp writes the JSON envelope every API endpoint answers with.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"medauth/internal/pkg/errs"
	"medauth/internal/pkg/logx"
)

// JSONResponse is the body of every API response.
type JSONResponse struct {
	// OK reports whether the request succeeded.
	OK bool `json:"ok"`

	// Code is 0 on success, otherwise an errs code.
	Code int `json:"code"`

	// Msg is the human readable outcome.
	Msg string `json:"msg"`

	// Name is the display name returned by a successful login.
	Name string `json:"name,omitempty"`
}

// RespondJSON writes payload as JSON with the given status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	body, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "Error encoding JSON response", "http_status", httpStatus)
		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	if _, err := w.Write(body); err != nil {
		logx.Warn("Failed to write response body", "error", err.Error(), "path", r.URL.Path)
	}
}

// RespondSuccess answers 200 with ok=true and msg.
func RespondSuccess(w http.ResponseWriter, r *http.Request, msg string) {
	RespondJSON(w, r, http.StatusOK, JSONResponse{OK: true, Msg: msg})
}

// RespondSuccessWithName answers 200 with ok=true, msg and the user's display name.
func RespondSuccessWithName(w http.ResponseWriter, r *http.Request, msg, name string) {
	RespondJSON(w, r, http.StatusOK, JSONResponse{OK: true, Msg: msg, Name: name})
}

// RespondError answers with the status, code and message of customErr.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, JSONResponse{
		OK:   false,
		Code: customErr.Code,
		Msg:  customErr.Message,
	})
}
