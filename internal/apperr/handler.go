package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	IsSuccess bool   `json:"is_success"`
	Error     string `json:"error"`
	Title     string `json:"title,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorBody{Error: ve.Message, Title: "validation error"})
			return
		}

		var re *RemoteError
		if errors.As(err, &re) {
			slog.Warn("Remote classifier failed", "status", re.Status, "error", re.Err)
			_ = c.JSON(http.StatusBadGateway, errorBody{Error: MsgRemoteFailure})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, errorBody{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
