package handler // handler defines http handlers

import (
	"database/sql"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contact-management/internal/apperr"
)

// dataResp is the success envelope every endpoint responds with.
type dataResp struct {
	Data any `json:"data"`
}

// pageResp is the success envelope for paginated search results.
type pageResp struct {
	Data   any `json:"data"`
	Paging any `json:"paging"`
}

// pathID parses a numeric path parameter. Non-numeric ids never reach the
// database.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Invalid " + name + " parameter")
	}
	return id, nil
}

// queryInt parses a bounded numeric query parameter. Only an absent
// parameter takes the default; an explicit value outside [lo, hi] is a
// validation failure, the same as any other bad input. hi <= 0 means no
// upper bound.
func queryInt(c echo.Context, name string, def, lo, hi int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation(map[string]string{name: "must be a number"})
	}
	if n < lo {
		return 0, apperr.Validation(map[string]string{name: "must be at least " + strconv.Itoa(lo)})
	}
	if hi > 0 && n > hi {
		return 0, apperr.Validation(map[string]string{name: "must be at most " + strconv.Itoa(hi)})
	}
	return n, nil
}

// nullString maps an optional request field to its nullable column value.
// Empty strings are stored as NULL, so absent filters and absent values
// stay distinguishable from empty ones.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
