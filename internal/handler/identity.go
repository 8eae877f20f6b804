package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homehero/homehero-server/internal/middleware"
	"github.com/homehero/homehero-server/internal/model"
)

// callerFrom returns the identity a request acts as. A uid verified from a
// session token replaces whatever uid the request carried.
func callerFrom(c echo.Context, uid, email string) model.Caller {
	if verified := middleware.GetUserID(c); verified != "" {
		uid = verified
	}
	return model.Caller{UID: uid, Email: email}
}
