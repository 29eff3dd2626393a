package handler

import (
	"medauth/internal/app/auth"
	"medauth/internal/configs"
)

// AppDeps holds what the HTTP handlers need.
type AppDeps struct {
	Config *configs.AppConfig
	Auth   *auth.Service

	// UsersFile, when set, is never served by the static file handler.
	UsersFile string
}
