package handler // handler defines http handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// dateLayout is the calendar-date wire format used by forms and queries.
const dateLayout = "2006-01-02"

// getUserID extracts the user_id the JWT middleware stored in context and
// converts it to uint64.  JWT numeric claims arrive as float64, but other
// encodings are tolerated.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// parseDate parses a calendar date in YYYY-MM-DD form.  Dates are always
// compared as parsed values, never as raw strings, so multi-digit
// components cannot introduce lexicographic-ordering bugs.
func parseDate(raw string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}
