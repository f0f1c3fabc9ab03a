package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
)

var kindStatus = map[errs.Kind]int{
	errs.KindValidation: http.StatusBadRequest,
	errs.KindNotFound:   http.StatusNotFound,
	errs.KindConflict:   http.StatusConflict,
	errs.KindPayment:    http.StatusPaymentRequired,
	errs.KindStorage:    http.StatusInternalServerError,
}

// httpError turns a service error into an echo error carrying the
// patron-facing message. Unknown errors become 500.
func (h *Handler) httpError(err error) *echo.HTTPError {
	code, ok := kindStatus[errs.KindOf(err)]
	if !ok {
		h.log.Error("unexpected error", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return echo.NewHTTPError(code, errs.Message(err))
}
