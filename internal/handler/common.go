package handler

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
)

var errNoIdentity = errors.New("no authenticated user in context")

// getUserID reads the user id stored by the JWT middleware. Number
// claims come back from the parser as float64.
func getUserID(c echo.Context) (uint64, error) {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v), nil
	case uint64:
		return v, nil
	case int64:
		return uint64(v), nil
	default:
		return 0, errNoIdentity
	}
}

// reqCtx derives a bounded context for database work from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
