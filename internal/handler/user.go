package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homehero/homehero-server/internal/errs"
	"github.com/homehero/homehero-server/internal/middleware"
	"github.com/homehero/homehero-server/internal/model"
	"github.com/homehero/homehero-server/internal/server"
	"github.com/homehero/homehero-server/internal/service"
)

// UserHandler serves the user profile routes.
type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) SyncUser(c echo.Context, req *SyncUserRequest) (*model.User, error) {
	profile := req.Profile()
	profile.UID = callerFrom(c, profile.UID, profile.Email).UID
	return h.users.Sync(c.Request().Context(), profile)
}

func (h *UserHandler) GetUser(c echo.Context, req *UserIDRequest) (*model.User, error) {
	return h.users.Get(c.Request().Context(), req.UID)
}

// UpdateUser edits a profile. A verified caller may only edit their own.
func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (*model.Ack, error) {
	if verified := middleware.GetUserID(c); verified != "" && verified != req.UID {
		return nil, errs.NewForbiddenError(service.ReasonNotAllowed, true)
	}
	return h.users.Update(c.Request().Context(), req.UID, req.Update())
}
