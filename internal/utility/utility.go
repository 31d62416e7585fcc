package utility

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// GetRealIP is a helper function to get the client's real IP address.
// It checks proxy headers first since the service usually runs behind one.
func GetRealIP(c echo.Context) string {
	// 1. X-Forwarded-For can be a list: "client, proxy1, proxy2"
	if xForwardedFor := c.Request().Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		return strings.TrimSpace(ips[0])
	}

	// 2. X-Real-IP is set by proxies like Nginx
	if xRealIP := c.Request().Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}

	// 3. Fall back to the direct peer
	return c.RealIP()
}

// SplitCSV splits a comma separated env value, dropping blanks.
func SplitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
