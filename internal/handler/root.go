package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Banner is the plain-text body of GET /.
const Banner = "HomeHero Server is running..."

func Root(c echo.Context) error {
	return c.String(http.StatusOK, Banner)
}
