package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "tailorshop/pkg/errors"
)

// parseIDParam reads a positive numeric path parameter. The raw value goes
// into the error details for logs only.
func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"invalid "+name+" parameter",
			err,
			map[string]interface{}{"param": ctx.Param(name)},
		)
	}
	return id, nil
}
