package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/bfhl/internal/apperr"
	"github.com/DjordjeVuckovic/bfhl/internal/dto"
	"github.com/DjordjeVuckovic/bfhl/internal/filter"
	"github.com/DjordjeVuckovic/bfhl/internal/service"
	"github.com/DjordjeVuckovic/bfhl/internal/view"
	"github.com/labstack/echo/v4"
)

// FormRouter serves the HTML form. Every POST rebuilds the page snapshot from
// the submitted input and filters; nothing is kept between requests.
type FormRouter struct {
	e          *echo.Echo
	classifier service.Classifier
}

func NewFormRouter(e *echo.Echo, classifier service.Classifier) *FormRouter {
	return &FormRouter{
		e:          e,
		classifier: classifier,
	}
}

func (r *FormRouter) Bind() {
	r.e.GET("/", r.indexHandler)
	r.e.POST("/", r.submitHandler)
}

func (r *FormRouter) indexHandler(c echo.Context) error {
	sel := filter.Parse(c.QueryParams()["filter"])
	return c.Render(http.StatusOK, view.IndexTemplate, view.NewPage("", sel))
}

func (r *FormRouter) submitHandler(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to parse form")
	}

	input := form.Get("data")
	sel := filter.Parse(form["filter"])
	if toggle := form.Get("toggle"); toggle != "" {
		sel = filter.Toggle(sel, filter.Option(toggle))
	}

	page := view.NewPage(input, sel)

	req, err := dto.ParseRequest([]byte(input))
	if err != nil {
		slog.Debug("Rejected form input", "error", err)
		return c.Render(http.StatusBadRequest, view.IndexTemplate, page.WithError(apperr.MsgInvalidInput))
	}

	resp, err := r.classifier.Classify(c.Request().Context(), req.Data)
	if err != nil {
		status := http.StatusInternalServerError
		var re *apperr.RemoteError
		if errors.As(err, &re) {
			status = http.StatusBadGateway
		}
		slog.Error("Classification failed", "error", err)
		return c.Render(status, view.IndexTemplate, page.WithError(apperr.MsgRemoteFailure))
	}

	return c.Render(http.StatusOK, view.IndexTemplate, page.WithResponse(resp, sel))
}
