package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

var (
	errInvalidSkip  = errors.New("skip must be an integer >= 0")
	errInvalidLimit = errors.New("limit must be an integer >= 1")
	errInvalidID    = errors.New("id must be a positive integer")
)

// pagination parses the skip/limit query parameters shared by all list
// endpoints. There is no upper bound on limit.
func pagination(c echo.Context) (skip, limit int, err error) {
	skip, limit = defaultSkip, defaultLimit

	if v := c.QueryParam("skip"); v != "" {
		parsed, perr := strconv.Atoi(v)
		if perr != nil || parsed < 0 {
			return 0, 0, errInvalidSkip
		}
		skip = parsed
	}
	if v := c.QueryParam("limit"); v != "" {
		parsed, perr := strconv.Atoi(v)
		if perr != nil || parsed < 1 {
			return 0, 0, errInvalidLimit
		}
		limit = parsed
	}
	return skip, limit, nil
}
