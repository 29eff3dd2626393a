/*
Package handler provides the HTTP handlers and routing of the medauth server.
*/
package handler

import (
	"errors"
	"net/http"

	"medauth/internal/app/auth"
	"medauth/internal/pkg/errs"
	"medauth/internal/pkg/logx"
	"medauth/internal/pkg/req"
	"medauth/internal/pkg/resp"
)

const (
	msgRegistered = "Registered successfully."
	msgLoggedIn   = "Login successful"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an account from name, email and password.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput
		if customErr := req.Bind(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		err := deps.Auth.Register(r.Context(), auth.RegisterInput{
			Name:     input.Name,
			Email:    input.Email,
			Password: input.Password,
		})
		if err != nil {
			resp.RespondError(w, r, authError(err, errs.ErrRegisterFieldsRequired, "register"))
			return
		}

		resp.RespondSuccess(w, r, msgRegistered)
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin checks credentials and answers with the user's display name.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.Bind(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		name, err := deps.Auth.Login(r.Context(), auth.LoginInput{
			Email:    input.Email,
			Password: input.Password,
		})
		if err != nil {
			resp.RespondError(w, r, authError(err, errs.ErrLoginFieldsRequired, "login"))
			return
		}

		resp.RespondSuccessWithName(w, r, msgLoggedIn, name)
	}
}

// authError maps an auth service error to its client error. fieldsCode is
// the code reported for missing fields on this endpoint.
func authError(err error, fieldsCode int, op string) *errs.CustomError {
	switch {
	case errors.Is(err, auth.ErrPasswordTooLong):
		return errs.NewError(errs.ErrPasswordTooLong, auth.MaxPasswordBytes)
	case errors.Is(err, auth.ErrInvalidEmail):
		return errs.NewError(errs.ErrInvalidParams)
	case errors.Is(err, auth.ErrValidation):
		return errs.NewError(fieldsCode)
	case errors.Is(err, auth.ErrConflict):
		return errs.NewError(errs.ErrEmailAlreadyRegistered)
	case errors.Is(err, auth.ErrNotFound):
		return errs.NewError(errs.ErrEmailNotFound)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return errs.NewError(errs.ErrIncorrectPassword)
	default:
		logx.Error(err, op+" failed")
		return errs.NewError(errs.ErrUnknown)
	}
}
