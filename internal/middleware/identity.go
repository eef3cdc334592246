package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// clientUserID renders the authenticated user id stored by JWTAuth as a
// string for use in rate-limit keys. JWT number claims arrive as
// float64, so the value is formatted rather than asserted. Anonymous
// requests map to "anon".
func clientUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	case int64:
		return fmt.Sprintf("%d", t)
	}
	return "anon"
}
